package charge

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DefaultDeclaredValue is the declared cargo value insured when none is given.
var DefaultDeclaredValue = kernel.MustMoney("1000.00")

// insuranceRate is the premium charged on the declared value (2%).
var insuranceRate = decimal.RequireFromString("0.02")

// Insurance adds a premium of 2% of the declared cargo value.
type Insurance struct {
	decorator
	declaredValue kernel.Money
}

// WithInsurance wraps inner with cargo insurance on declaredValue.
func WithInsurance(inner Component, declaredValue kernel.Money) Insurance {
	premium := declaredValue.Mul(insuranceRate)
	return Insurance{
		decorator: decorator{
			inner:     inner,
			surcharge: premium,
			line:      fmt.Sprintf("+ Insurance (declared R$ %s): R$ %s", declaredValue, premium),
		},
		declaredValue: declaredValue,
	}
}

// DeclaredValue returns the insured cargo value.
func (i Insurance) DeclaredValue() kernel.Money {
	return i.declaredValue
}
