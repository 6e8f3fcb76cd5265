package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Change variación porcentual entre dos valores. Percentage es el valor
// absoluto con un decimal fijo ("50.0"); IsPositive es el signo de la
// diferencia (cero cuenta como positivo).
type Change struct {
	Percentage string `json:"percentage"`
	IsPositive bool   `json:"isPositive"`
}

// PercentageChange calcula la variación de current respecto a previous.
// Con previous en cero no hay base de comparación: devuelve 100% si current
// es positivo y 0% en caso contrario.
func PercentageChange(current, previous decimal.Decimal) Change {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return Change{Percentage: "100.0", IsPositive: true}
		}
		return Change{Percentage: "0.0", IsPositive: false}
	}
	diff := current.Sub(previous)
	pct := diff.Div(previous).Mul(hundred)
	return Change{
		Percentage: pct.Abs().StringFixed(1),
		IsPositive: diff.GreaterThanOrEqual(decimal.Zero),
	}
}
