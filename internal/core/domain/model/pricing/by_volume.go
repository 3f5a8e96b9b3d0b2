package pricing

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

var (
	volumeBaseFee = kernel.MustMoney("12.00")
	volumePerM3   = kernel.MustMoney("120.00")
)

// ByVolume charges a base fee plus a rate per cubic meter: 12.00 + m³ × 120.00.
type ByVolume struct{}

// NewByVolume creates the volume strategy.
func NewByVolume() ByVolume {
	return ByVolume{}
}

func (ByVolume) Calculate(pkg shipment.Package) kernel.Money {
	return volumeBaseFee.Add(volumePerM3.Mul(decimal.NewFromFloat(pkg.VolumeM3())))
}

func (ByVolume) Name() string {
	return "Volume rate"
}
