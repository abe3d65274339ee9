package stickyclient

import (
	"context"

	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
)

const orderFindOperation = "order_find"

// FindOrders busca os identificadores de pedidos de acordo com os filtros
func (c *StickyClient) FindOrders(ctx context.Context, params stickydomain.OrderFindRequest) (*stickydomain.OrderFindResponse, error) {
	response := &stickydomain.OrderFindResponse{}

	if err := c.post(ctx, orderFindOperation, params, response); err != nil {
		return nil, err
	}

	return response, nil
}
