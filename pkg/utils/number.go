package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para centavos (meio para cima)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return RoundDecimal(decimal.NewFromFloat(f)).InexactFloat64()
}

// RoundDecimal arredonda um decimal para duas casas, metade para cima (em direção a +∞)
func RoundDecimal(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(decimal.NewFromFloat(0.5)).Floor().Shift(-2)
}
