package stickyclient

import (
	"context"

	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
)

const productIndexOperation = "product_index"

// GetProductIndex busca os produtos informados na plataforma
func (c *StickyClient) GetProductIndex(ctx context.Context, productIDs []string) (*stickydomain.ProductIndexResponse, error) {
	response := &stickydomain.ProductIndexResponse{}

	request := stickydomain.ProductIndexRequest{
		ProductID: productIDs,
	}

	if err := c.post(ctx, productIndexOperation, request, response); err != nil {
		return nil, err
	}

	if response.Products == nil {
		response.Products = stickydomain.Catalog{}
	}

	return response, nil
}
