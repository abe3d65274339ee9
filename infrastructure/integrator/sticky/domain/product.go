package stickydomain

import "sort"

// Product é o item retornado pelo endpoint product_index
type Product struct {
	ProductID   string `json:"product_id,omitempty"`
	Name        string `json:"product_name,omitempty"`
	SKU         string `json:"product_sku,omitempty"`
	Price       Amount `json:"product_price,omitempty"`
	Description string `json:"product_description,omitempty"`
	CategoryID  string `json:"product_category_id,omitempty"`
	IsTrial     string `json:"product_is_trial,omitempty"`
	MaxQuantity Count  `json:"product_max_quantity,omitempty"`
}

// Catalog é o mapa productId -> produto devolvido pela plataforma
type Catalog map[string]Product

// IDs retorna os identificadores do catálogo em ordem crescente
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
