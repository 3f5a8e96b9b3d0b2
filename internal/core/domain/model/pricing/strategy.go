package pricing

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// Strategy computes the base freight value of a package.
//
// Implementations must be pure: the same package always yields the same
// value, and the value is positive for every valid package.
//
// Example:
//
//	strategy := pricing.Resolve(pricing.ParseSelector("2"))
//	base := strategy.Calculate(pkg)
//	fmt.Printf("%s: R$ %s\n", strategy.Name(), base)
type Strategy interface {
	// Calculate returns the base freight value of pkg.
	Calculate(pkg shipment.Package) kernel.Money
	// Name returns the human-readable strategy name used in quote details.
	Name() string
}
