package stickydomain

// SuccessCode é o response_code de sucesso da plataforma
const SuccessCode Code = "100"

// BaseResponse são os campos comuns a todas as respostas da API
type BaseResponse struct {
	ResponseCode Code   `json:"response_code"`
	Message      string `json:"message,omitempty"`
}

func (r BaseResponse) IsSuccess() bool {
	return r.ResponseCode == SuccessCode
}

type ProductIndexRequest struct {
	ProductID []string `json:"product_id"`
}

type ProductIndexResponse struct {
	BaseResponse
	Products Catalog `json:"products"`
}

type OrderFindRequest struct {
	CampaignID string   `json:"campaign_id"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	ProductID  []string `json:"product_id"`
	Criteria   string   `json:"criteria"`
	SearchType string   `json:"search_type"`
}

type OrderFindResponse struct {
	BaseResponse
	OrderIDs    IDList `json:"order_id"`
	TotalOrders Count  `json:"total_orders"`
}

type OrderViewRequest struct {
	OrderID []int `json:"order_id"`
}

type OrderViewResponse struct {
	BaseResponse
	Data map[string]Order `json:"data"`
}

// Base permite inspecionar o response_code de qualquer resposta
func (r BaseResponse) Base() BaseResponse {
	return r
}
