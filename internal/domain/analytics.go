package domain

import "time"

// AnalyticsSummary agrega os produtos alvo já sincronizados
type AnalyticsSummary struct {
	TotalProducts      int     `json:"totalProducts"`
	TargetProducts     int     `json:"targetProducts"`
	TotalGrossRevenue  float64 `json:"totalGrossRevenue"`
	TotalExpense       float64 `json:"totalExpense"`
	TotalRefunds       float64 `json:"totalRefunds"`
	TotalProfitAndLoss float64 `json:"totalProfitAndLoss"`
	TotalOrderNo       int     `json:"totalOrderNo"`
	AvgProfitPerOrder  string  `json:"avgProfitPerOrder"`
}

// ProductAnalytics é a linha de produto exibida junto do resumo
type ProductAnalytics struct {
	ProductID            string    `json:"productId"`
	Name                 string    `json:"name"`
	OrderNo              int       `json:"orderNo"`
	GrossRevenue         float64   `json:"grossRevenue"`
	Expense              float64   `json:"expense"`
	Refunds              float64   `json:"refunds"`
	ProfitAndLoss        float64   `json:"profitAndLoss"`
	ProfitAndLossPerUnit float64   `json:"profitAndLossPerUnit"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type AnalyticsResponse struct {
	Summary  AnalyticsSummary   `json:"summary"`
	Products []ProductAnalytics `json:"products"`
}

type ProductsResponse struct {
	Products []*Product `json:"products"`
	Total    int        `json:"total"`
}
