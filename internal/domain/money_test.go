package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected Cents
	}{
		{name: "Whole amount", amount: 25, expected: 2500},
		{name: "Two decimals", amount: 19.99, expected: 1999},
		{name: "Binary fraction", amount: 0.1, expected: 10},
		{name: "Rounds half up", amount: 0.005, expected: 1},
		{name: "Below a cent", amount: 0.004, expected: 0},
		{name: "Negative", amount: -3, expected: -300},
		{name: "Not a number", amount: math.NaN(), expected: 0},
		{name: "Infinity", amount: math.Inf(1), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCents(tt.amount))
		})
	}
}

func TestCentsFloat(t *testing.T) {
	assert.Equal(t, 19.99, Cents(1999).Float())
	assert.Equal(t, 0.2, Cents(20).Float())
}

func TestRunningTotalMatchesDonators(t *testing.T) {
	var total Cents
	donators := []Cents{}

	for _, amount := range []float64{0.1, 0.2} {
		total += ToCents(amount)
		donators = append(donators, ToCents(amount))
	}
	total -= ToCents(0.1)
	donators = donators[1:]

	var sum Cents
	for _, d := range donators {
		sum += d
	}
	assert.Equal(t, sum, total)
	assert.Equal(t, 0.2, total.Float())
}
