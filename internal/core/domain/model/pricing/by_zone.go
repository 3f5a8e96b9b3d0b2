package pricing

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

var (
	zoneRates = map[shipment.Zone]kernel.Money{
		shipment.ZoneLocal:    kernel.MustMoney("15.00"),
		shipment.ZoneRegional: kernel.MustMoney("35.00"),
		shipment.ZoneNational: kernel.MustMoney("80.00"),
	}
	// defaultZoneRate prices zones missing from zoneRates.
	defaultZoneRate = kernel.MustMoney("50.00")
)

// ByZone charges a flat rate per shipping zone.
//
//	local    15.00
//	regional 35.00
//	nacional 80.00
//	other    50.00
type ByZone struct{}

// NewByZone creates the zone strategy.
func NewByZone() ByZone {
	return ByZone{}
}

// Calculate looks the package zone up in the rate table; unknown zones cost
// the default rate.
func (ByZone) Calculate(pkg shipment.Package) kernel.Money {
	if rate, ok := zoneRates[pkg.Zone()]; ok {
		return rate
	}
	return defaultZoneRate
}

func (ByZone) Name() string {
	return "Zone rate"
}
