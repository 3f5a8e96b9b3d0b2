package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimal places a rounded amount keeps.
const moneyPlaces = 2

// Money is an exact decimal amount in the quoting currency (BRL).
// Arithmetic never rounds; Round is applied once, when a final freight value
// is produced, so intermediate surcharges keep full precision.
//
// The zero value is a valid zero amount.
//
// Example:
//
//	base := kernel.NewMoney(35)
//	withTolls := base.Add(kernel.NewMoney(8.5).MulInt(3)) // 60.50
//	final := withTolls.Mul(decimal.RequireFromString("1.3")).Round()
//	fmt.Println(final) // 78.65
type Money struct {
	amount decimal.Decimal
}

// NewMoney converts a float amount. Float literals such as 8.50 or 0.02 are
// converted to their shortest decimal representation, so NewMoney(8.5) is
// exactly 8.5.
func NewMoney(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromDecimal wraps an existing decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses a decimal string such as "117.65".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: amount}, nil
}

// MustMoney is MoneyFromString for constants; it panics on malformed input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul scales the amount by factor, e.g. a carrier price multiplier.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt scales the amount by a whole count, e.g. a number of tolls.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Round returns the amount rounded to two decimal places, half away from zero.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(moneyPlaces)}
}

// Decimal exposes the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the nearest float64. Exact for every amount the pricing
// tables produce from exact inputs.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Equal compares amounts numerically, so 75.5 equals 75.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is strictly lower than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String renders the amount with exactly two decimals ("117.65").
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}
