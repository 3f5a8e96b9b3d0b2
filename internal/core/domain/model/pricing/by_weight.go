package pricing

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

var (
	weightBaseFee = kernel.MustMoney("10.00")
	weightPerKg   = kernel.MustMoney("8.50")
)

// ByWeight charges a base fee plus a rate per kilogram: 10.00 + kg × 8.50.
type ByWeight struct{}

// NewByWeight creates the weight strategy.
func NewByWeight() ByWeight {
	return ByWeight{}
}

func (ByWeight) Calculate(pkg shipment.Package) kernel.Money {
	return weightBaseFee.Add(weightPerKg.Mul(decimal.NewFromFloat(pkg.WeightKg())))
}

func (ByWeight) Name() string {
	return "Weight rate"
}
