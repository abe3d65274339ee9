package stickyclient

import (
	"context"

	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
)

const orderViewOperation = "order_view"

// ViewOrders busca os detalhes de um conjunto de pedidos
func (c *StickyClient) ViewOrders(ctx context.Context, orderIDs []int) (*stickydomain.OrderViewResponse, error) {
	response := &stickydomain.OrderViewResponse{}

	request := stickydomain.OrderViewRequest{
		OrderID: orderIDs,
	}

	if err := c.post(ctx, orderViewOperation, request, response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		response.Data = map[string]stickydomain.Order{}
	}

	return response, nil
}
