package stickydomain

import "strings"

const flagYes = "yes"

// Order contém os campos financeiros de um pedido retornado por order_view
type Order struct {
	OrderID              string `json:"order_id,omitempty"`
	OrderStatus          string `json:"order_status,omitempty"`
	OrderTotal           Amount `json:"order_total,omitempty"`
	IsRefund             string `json:"is_refund,omitempty"`
	IsVoid               string `json:"is_void,omitempty"`
	AmountRefundedToDate Amount `json:"amount_refunded_to_date,omitempty"`
	TimeStamp            string `json:"time_stamp,omitempty"`
}

// IsRefunded indica se o pedido foi estornado, cancelado ou possui valor devolvido
func (o Order) IsRefunded() bool {
	return strings.EqualFold(o.IsRefund, flagYes) ||
		strings.EqualFold(o.IsVoid, flagYes) ||
		o.AmountRefundedToDate.IsPositive()
}
