package carrier

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCarrierIsNotConstructed = errs.NewValueIsRequiredError("carrier")

// Carrier is a transport provider with a fixed lead time and price multiplier.
type Carrier struct {
	name         string
	leadTimeDays int
	multiplier   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCarrier validates and creates a carrier.
//
// Parameters:
//   - name: display name, must not be blank
//   - leadTimeDays: delivery time in days, must be > 0
//   - multiplier: decimal factor applied to the service value, must be > 0
//
// Example:
//
//	c, err := carrier.NewCarrier("RegioLog", 4, decimal.RequireFromString("1.15"))
func NewCarrier(name string, leadTimeDays int, multiplier decimal.Decimal) (Carrier, error) {
	c := Carrier{}
	if err := errors.Join(
		c.setName(name),
		c.setLeadTimeDays(leadTimeDays),
		c.setMultiplier(multiplier),
	); err != nil {
		return Carrier{}, err
	}
	c.guard = guard.NewConstructorGuard()
	return c, nil
}

// MustCarrier is NewCarrier for fixed tiers; it panics on invalid input.
func MustCarrier(name string, leadTimeDays int, multiplier string) Carrier {
	c, err := NewCarrier(name, leadTimeDays, decimal.RequireFromString(multiplier))
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Carrier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setLeadTimeDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidError("leadTimeDays")
	}
	c.leadTimeDays = days
	return nil
}

func (c *Carrier) setMultiplier(multiplier decimal.Decimal) error {
	if !multiplier.IsPositive() {
		return errs.NewValueIsInvalidError("multiplier")
	}
	c.multiplier = multiplier
	return nil
}

func (c Carrier) Name() string {
	return c.name
}

func (c Carrier) LeadTimeDays() int {
	return c.leadTimeDays
}

func (c Carrier) Multiplier() decimal.Decimal {
	return c.multiplier
}

// Apply scales value by the carrier multiplier without rounding.
func (c Carrier) Apply(value kernel.Money) kernel.Money {
	return value.Mul(c.multiplier)
}

func (c Carrier) Validate() error {
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}
