// Package commands contains the use cases that change system state: running a
// quotation (which appends to the activity log) and pruning that log.
// Every command is validated by its constructor and re-checked by its handler.
package commands

import (
	"errors"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/guard"
)

var ErrQuoteShipmentCommandIsNotConstructed = errors.New(
	"QuoteShipmentCommand must be created via NewQuoteShipmentCommand constructor",
)

// QuoteShipmentCommand asks for a quotation of one package.
// Selector and tier keys are taken as given: unknown keys are priced with the
// defaults, never rejected.
//
// Example:
//
//	pkg, _ := shipment.NewPackage(15, 0.5, "São Paulo, SP", "Rio de Janeiro, RJ", shipment.ZoneRegional)
//	cmd, err := NewQuoteShipmentCommand(kernel.NewUUID(), pkg,
//	    pricing.SelectorByZone, carrier.TierStandard,
//	    charge.NewAddOnSet(charge.AddOnToll, charge.AddOnInsurance))
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//	quote, err := handler.Handle(ctx, cmd)
type QuoteShipmentCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	pkg       shipment.Package
	selector  pricing.Selector
	tier      carrier.Tier
	addOns    charge.AddOnSet

	guard guard.ConstructorGuard
}

// NewQuoteShipmentCommand validates the request ID and the package.
func NewQuoteShipmentCommand(
	requestID kernel.UUID,
	pkg shipment.Package,
	selector pricing.Selector,
	tier carrier.Tier,
	addOns charge.AddOnSet,
) (QuoteShipmentCommand, error) {
	cmd := QuoteShipmentCommand{
		selector: selector,
		tier:     tier,
		addOns:   addOns,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setPackage(pkg),
	); err != nil {
		return QuoteShipmentCommand{}, err
	}

	return cmd, nil
}

func (c QuoteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrQuoteShipmentCommandIsNotConstructed)
}

func (c QuoteShipmentCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c QuoteShipmentCommand) Package() shipment.Package {
	return c.pkg
}

func (c QuoteShipmentCommand) Selector() pricing.Selector {
	return c.selector
}

func (c QuoteShipmentCommand) Tier() carrier.Tier {
	return c.tier
}

func (c QuoteShipmentCommand) AddOns() charge.AddOnSet {
	return c.addOns
}

func (c *QuoteShipmentCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *QuoteShipmentCommand) setPackage(pkg shipment.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	c.pkg = pkg
	return nil
}
