package stickydomain

import "github.com/shopspring/decimal"

var (
	// TransactionFeeRate é a taxa de transação estimada por pedido
	TransactionFeeRate = decimal.NewFromFloat(0.12)
	// PlatformFeeRate são as demais despesas estimadas por pedido
	PlatformFeeRate = decimal.NewFromFloat(0.15)
)

// OrderFinancials é a soma bruta (sem arredondamento) dos pedidos de um produto
type OrderFinancials struct {
	GrossRevenue decimal.Decimal
	Expense      decimal.Decimal
	Refunds      decimal.Decimal
}

// Aggregate soma receita, despesa e estornos dos pedidos.
// As taxas são aplicadas pedido a pedido.
func Aggregate(orders []Order) OrderFinancials {
	result := OrderFinancials{
		GrossRevenue: decimal.Zero,
		Expense:      decimal.Zero,
		Refunds:      decimal.Zero,
	}

	for _, order := range orders {
		orderTotal := order.OrderTotal.Decimal
		result.GrossRevenue = result.GrossRevenue.Add(orderTotal)

		transactionFee := orderTotal.Mul(TransactionFeeRate)
		otherExpenses := orderTotal.Mul(PlatformFeeRate)
		result.Expense = result.Expense.Add(transactionFee).Add(otherExpenses)

		result.Refunds = result.Refunds.Add(RefundAmount(order))
	}

	return result
}

// RefundAmount retorna o valor estornado de um pedido: o valor devolvido até a data
// quando informado, senão o total do pedido (estorno integral)
func RefundAmount(order Order) decimal.Decimal {
	if !order.IsRefunded() {
		return decimal.Zero
	}

	if !order.AmountRefundedToDate.IsZero() {
		return order.AmountRefundedToDate.Decimal
	}

	return order.OrderTotal.Decimal
}

// Float64 converte os totais para float64 sem arredondar
func (f OrderFinancials) Float64() (grossRevenue, expense, refunds float64) {
	return f.GrossRevenue.InexactFloat64(), f.Expense.InexactFloat64(), f.Refunds.InexactFloat64()
}
