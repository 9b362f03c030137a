package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para centavos; NaN e infinitos viram 0
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide retorna 0 quando o denominador é zero
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func Percentage(num, den float64) float64 {
	return SafeDivide(num, den) * 100
}

// PercentChange é a variação percentual de previous para current; sem base retorna 0
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
