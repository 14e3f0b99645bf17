package pricing

import "github.com/shopspring/decimal"

// moneyPlaces is the number of decimals kept in a breakdown.
const moneyPlaces = 2

// roundMoney rounds half-up to the smallest currency unit.
func roundMoney(d decimal.Decimal) float64 {
	return d.Round(moneyPlaces).InexactFloat64()
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func ref(v float64) *float64 {
	return &v
}
