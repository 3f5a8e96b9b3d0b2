package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when a Quote skipped NewQuote.
var ErrQuoteIsNotConstructed = errs.NewValueIsRequiredError("quote must be created via NewQuote constructor")

// Quote is the outcome of a quotation request: the freight value charged by
// the selected carrier, the promised lead time and the breakdown of how the
// value was composed.
//
// Quote follows these invariants:
//   - Freight value is rounded to two decimal places and never negative
//   - Lead time is a positive number of business days
//   - Carrier name is not blank
//   - Details keep the order in which charges were applied
//
// A Quote is created once per request and never mutated; Details returns a
// copy.
type Quote struct { //nolint:recvcheck //using for validation
	pkg          Package
	freightValue kernel.Money
	leadTimeDays int
	carrierName  string
	details      []string

	guard guard.ConstructorGuard
}

// NewQuote builds a Quote.
//
// Parameters:
//   - pkg: the quoted package (must be constructed)
//   - freightValue: final value; rounded to two decimals here
//   - leadTimeDays: business days until delivery (> 0)
//   - carrierName: name of the carrier that will ship
//   - details: charge breakdown lines, copied
//
// Returns:
//   - Quote: the constructed value
//   - error: joined validation errors
func NewQuote(
	pkg Package,
	freightValue kernel.Money,
	leadTimeDays int,
	carrierName string,
	details []string,
) (Quote, error) {
	q := Quote{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setPackage(pkg),
		q.setFreightValue(freightValue),
		q.setLeadTimeDays(leadTimeDays),
		q.setCarrierName(carrierName),
	); err != nil {
		return Quote{}, err
	}

	q.details = slices.Clone(details)
	return q, nil
}

// Validate returns ErrQuoteIsNotConstructed for the zero value.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// Package returns the quoted package.
func (q Quote) Package() Package {
	return q.pkg
}

// FreightValue returns the final freight value, rounded to two decimals.
func (q Quote) FreightValue() kernel.Money {
	return q.freightValue
}

// LeadTimeDays returns the promised lead time in business days.
func (q Quote) LeadTimeDays() int {
	return q.leadTimeDays
}

// CarrierName returns the name of the carrier selected by the tier.
func (q Quote) CarrierName() string {
	return q.carrierName
}

// Details returns a copy of the charge breakdown, base line first.
func (q Quote) Details() []string {
	return slices.Clone(q.details)
}

// IsEqual compares two quotes value by value.
func (q Quote) IsEqual(other Quote) bool {
	return q.pkg == other.pkg &&
		q.freightValue.Equal(other.freightValue) &&
		q.leadTimeDays == other.leadTimeDays &&
		q.carrierName == other.carrierName &&
		slices.Equal(q.details, other.details)
}

func (q Quote) String() string {
	return fmt.Sprintf("%s via %s in %d days: R$ %s [%s]",
		q.pkg, q.carrierName, q.leadTimeDays, q.freightValue, strings.Join(q.details, "; "))
}

func (q *Quote) setPackage(pkg Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	q.pkg = pkg
	return nil
}

func (q *Quote) setFreightValue(value kernel.Money) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("freightValue", fmt.Errorf("%s is negative", value))
	}
	q.freightValue = value.Round()
	return nil
}

func (q *Quote) setLeadTimeDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("leadTimeDays", fmt.Errorf("%d is not greater than 0", days))
	}
	q.leadTimeDays = days
	return nil
}

func (q *Quote) setCarrierName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	q.carrierName = name
	return nil
}
