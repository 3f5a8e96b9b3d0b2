package services

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
)

// ActivityRecorder receives one human-readable message per pipeline step.
// Implementations must not block the quotation on sink failures.
type ActivityRecorder interface {
	Record(ctx context.Context, message string)
}

// QuoteService computes quotations. It holds no state; the zero value is
// ready to use and concurrent calls do not interfere.
//
// Pipeline:
//  1. resolve the pricing strategy (unknown selectors price by zone)
//  2. compute the base value
//  3. wrap it in the requested add-ons, in charge.ApplyOrder
//  4. resolve the carrier tier (unknown tiers ship standard)
//  5. apply the carrier multiplier and round to two decimals
//
// Example usage:
//
//	svc := services.NewQuoteService()
//	q, err := svc.Quote(ctx, journal, pkg, pricing.SelectorByZone, carrier.TierStandard,
//	    charge.NewAddOnSet(charge.AddOnToll, charge.AddOnInsurance))
//	// q.FreightValue() == 117.65 for a 15 kg regional package
type QuoteService struct{}

func NewQuoteService() QuoteService {
	return QuoteService{}
}

// Quote runs the pipeline for pkg.
//
// Parameters:
//   - ctx: forwarded to the recorder
//   - recorder: receives one message per step, in order
//   - pkg: the package to quote (must be constructed)
//   - selector: pricing strategy key
//   - tier: carrier tier key
//   - addOns: optional services; order inside the set is irrelevant
//
// Returns:
//   - shipment.Quote: the quotation
//   - error: shipment.ErrPackageIsNotConstructed for a zero-value package
func (s QuoteService) Quote(
	ctx context.Context,
	recorder ActivityRecorder,
	pkg shipment.Package,
	selector pricing.Selector,
	tier carrier.Tier,
	addOns charge.AddOnSet,
) (shipment.Quote, error) {
	if err := pkg.Validate(); err != nil {
		return shipment.Quote{}, err
	}

	recorder.Record(ctx, fmt.Sprintf("Quote started: %s -> %s", pkg.Origin(), pkg.Destination()))

	strategy := pricing.Resolve(selector)
	base := strategy.Calculate(pkg)
	recorder.Record(ctx, fmt.Sprintf("Strategy '%s': R$ %s", strategy.Name(), base))

	var component charge.Component = charge.NewBasic(base, strategy.Name())
	for _, addOn := range addOns.Ordered() {
		component = addOn.Decorate(component)
		recorder.Record(ctx, "Added: "+addOn.Label())
	}

	assignment := carrier.Process(carrier.Resolve(tier), pkg, component.Cost())
	recorder.Record(ctx, fmt.Sprintf("Carrier: %s - lead time: %d days",
		assignment.CarrierName, assignment.LeadTimeDays))

	quote, err := shipment.NewQuote(
		pkg,
		assignment.FinalValue,
		assignment.LeadTimeDays,
		assignment.CarrierName,
		component.Describe(),
	)
	if err != nil {
		return shipment.Quote{}, err
	}

	recorder.Record(ctx, fmt.Sprintf("Quote finished: R$ %s", quote.FreightValue()))
	return quote, nil
}
