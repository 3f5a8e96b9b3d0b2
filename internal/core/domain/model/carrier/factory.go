package carrier

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// Factory creates the carrier of one tier.
type Factory interface {
	CreateCarrier() Carrier
}

// FactoryFunc adapts a plain function to Factory.
type FactoryFunc func() Carrier

func (f FactoryFunc) CreateCarrier() Carrier {
	return f()
}

var (
	economyCarrier  = MustCarrier("TransLog Econômica", 10, "1.0")
	standardCarrier = MustCarrier("ExpressLog Padrão", 5, "1.3")
	expressCarrier  = MustCarrier("RapidLog Express", 2, "1.8")
)

type EconomyFactory struct{}

func (EconomyFactory) CreateCarrier() Carrier { return economyCarrier }

type StandardFactory struct{}

func (StandardFactory) CreateCarrier() Carrier { return standardCarrier }

type ExpressFactory struct{}

func (ExpressFactory) CreateCarrier() Carrier { return expressCarrier }

// Assignment is the outcome of handing a package to a carrier.
type Assignment struct {
	CarrierName  string
	FinalValue   kernel.Money
	LeadTimeDays int
}

// Process creates the tier's carrier and applies it to base. The package is
// carried along for carriers that price by shipment; the built-in tiers ignore
// it. FinalValue is not rounded.
func Process(factory Factory, _ shipment.Package, base kernel.Money) Assignment {
	c := factory.CreateCarrier()
	return Assignment{
		CarrierName:  c.Name(),
		FinalValue:   c.Apply(base),
		LeadTimeDays: c.LeadTimeDays(),
	}
}
