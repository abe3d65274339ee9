package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sticky-analytics-api/pkg/utils"
)

// UnknownProductName é usado quando a plataforma não informa o nome do produto
const UnknownProductName = "Unknown Product"

// Product representa o snapshot financeiro de um produto armazenado no banco
type Product struct {
	ID                   int64     `json:"-"`
	ProductID            string    `json:"productId"`
	Name                 string    `json:"name"`
	OrderNo              int       `json:"orderNo"`
	GrossRevenue         float64   `json:"grossRevenue"`
	Expense              float64   `json:"expense"`
	Refunds              float64   `json:"refunds"`
	ProfitAndLoss        float64   `json:"profitAndLoss"`
	ProfitAndLossPerUnit float64   `json:"profitAndLossPerUnit"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ProductFields são os campos gravados a cada sincronização
type ProductFields struct {
	Name                 string
	OrderNo              int
	GrossRevenue         float64
	Expense              float64
	Refunds              float64
	ProfitAndLoss        float64
	ProfitAndLossPerUnit float64
}

// Normalize aplica os valores padrão e o arredondamento de persistência
func (f ProductFields) Normalize() ProductFields {
	if f.Name == "" {
		f.Name = UnknownProductName
	}

	if f.OrderNo < 0 {
		f.OrderNo = 0
	}

	f.GrossRevenue = utils.RoundWithTwoDecimalPlace(f.GrossRevenue)
	f.Expense = utils.RoundWithTwoDecimalPlace(f.Expense)
	f.Refunds = utils.RoundWithTwoDecimalPlace(f.Refunds)
	f.ProfitAndLoss = utils.RoundWithTwoDecimalPlace(f.ProfitAndLoss)
	f.ProfitAndLossPerUnit = utils.RoundWithTwoDecimalPlace(f.ProfitAndLossPerUnit)

	return f
}

// DateRange é a janela de datas consultada na plataforma (MM/DD/YYYY)
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ProductFinancials é o resultado financeiro calculado para um produto em uma janela
type ProductFinancials struct {
	OrderNo              int       `json:"orderNo"`
	GrossRevenue         float64   `json:"grossRevenue"`
	Expense              float64   `json:"expense"`
	Refunds              float64   `json:"refunds"`
	ProfitAndLoss        float64   `json:"profitAndLoss"`
	ProfitAndLossPerUnit float64   `json:"profitAndLossPerUnit"`
	DateRange            DateRange `json:"dateRange"`
}

// ToFields converte o resultado financeiro nos campos persistidos
func (f ProductFinancials) ToFields(name string) ProductFields {
	return ProductFields{
		Name:                 name,
		OrderNo:              f.OrderNo,
		GrossRevenue:         f.GrossRevenue,
		Expense:              f.Expense,
		Refunds:              f.Refunds,
		ProfitAndLoss:        f.ProfitAndLoss,
		ProfitAndLossPerUnit: f.ProfitAndLossPerUnit,
	}
}

// DeriveProductFinancials calcula o P&L e o P&L por unidade a partir dos totais do período.
// Todos os valores monetários retornam arredondados para centavos.
func DeriveProductFinancials(orderNo int, grossRevenue, expense, refunds float64) ProductFinancials {
	gross := utils.RoundDecimal(decimal.NewFromFloat(grossRevenue))
	exp := utils.RoundDecimal(decimal.NewFromFloat(expense))
	ref := utils.RoundDecimal(decimal.NewFromFloat(refunds))

	profitAndLoss := utils.RoundDecimal(gross.Sub(exp).Sub(ref))

	profitAndLossPerUnit := decimal.Zero
	if orderNo > 0 {
		profitAndLossPerUnit = utils.RoundDecimal(profitAndLoss.Div(decimal.NewFromInt(int64(orderNo))))
	}

	return ProductFinancials{
		OrderNo:              max(orderNo, 0),
		GrossRevenue:         gross.InexactFloat64(),
		Expense:              exp.InexactFloat64(),
		Refunds:              ref.InexactFloat64(),
		ProfitAndLoss:        profitAndLoss.InexactFloat64(),
		ProfitAndLossPerUnit: profitAndLossPerUnit.InexactFloat64(),
	}
}
