package domain

import "math"

// Cents is a money amount in minor currency units. Stored totals are sums of
// Cents, so they always match the donations they were built from.
type Cents int64

// ToCents rounds a major-unit amount to the nearest minor unit. NaN and
// infinities map to zero.
func ToCents(amount float64) Cents {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return Cents(math.Round(amount * 100))
}

// Float returns the amount in major units.
func (c Cents) Float() float64 {
	return float64(c) / 100
}
