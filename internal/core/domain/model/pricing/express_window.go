package pricing

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

var expressMultiplier = decimal.RequireFromString("2.5")

// ExpressWindow prices a guaranteed delivery window as 2.5 times the zone rate.
type ExpressWindow struct {
	zone ByZone
}

// NewExpressWindow creates the express window strategy on top of ByZone.
func NewExpressWindow() ExpressWindow {
	return ExpressWindow{zone: NewByZone()}
}

func (e ExpressWindow) Calculate(pkg shipment.Package) kernel.Money {
	return e.zone.Calculate(pkg).Mul(expressMultiplier)
}

func (ExpressWindow) Name() string {
	return "Express window"
}
