package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// RoundDollars rounds to whole currency units. Only the house-wash
// half-price promotion uses this; every other money step rounds to cents.
func RoundDollars(num float64) float64 {
	return math.Round(num)
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// CeilHours converts minutes to whole hours, rounding up.
func CeilHours(minutes int) int {
	return (minutes + 59) / 60
}
