package shipment

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when a Package skipped NewPackage.
var ErrPackageIsNotConstructed = errs.NewValueIsRequiredError("package must be created via NewPackage constructor")

// Package describes a shipment: how heavy and bulky it is, where it travels
// and in which zone. Package is an immutable value object; the zero value is
// invalid.
//
// Example:
//
//	pkg, err := shipment.NewPackage(15, 0.8, "São Paulo, SP", "Rio de Janeiro, RJ", shipment.ZoneRegional)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pkg) // São Paulo, SP -> Rio de Janeiro, RJ (regional, 15 kg, 0.8 m³)
type Package struct { //nolint:recvcheck //using for validation
	weightKg    float64
	volumeM3    float64
	origin      string
	destination string
	zone        Zone

	guard guard.ConstructorGuard
}

// NewPackage validates the measures and builds a Package.
//
// Parameters:
//   - weightKg: gross weight in kilograms (finite, >= 0)
//   - volumeM3: cubic volume in cubic meters (finite, >= 0)
//   - origin, destination: free-form place names
//   - zone: shipping zone; unknown zones are kept as given
//
// Returns:
//   - Package: the constructed value
//   - error: joined ValueIsInvalidError for every rejected measure
func NewPackage(weightKg, volumeM3 float64, origin, destination string, zone Zone) (Package, error) {
	pkg := Package{
		origin:      origin,
		destination: destination,
		zone:        zone,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setWeight(weightKg),
		pkg.setVolume(volumeM3),
	); err != nil {
		return Package{}, err
	}

	return pkg, nil
}

// Validate returns ErrPackageIsNotConstructed for the zero value.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// WeightKg returns the gross weight in kilograms.
func (p Package) WeightKg() float64 {
	return p.weightKg
}

// VolumeM3 returns the cubic volume in cubic meters.
func (p Package) VolumeM3() float64 {
	return p.volumeM3
}

// Origin returns where the package is collected.
func (p Package) Origin() string {
	return p.origin
}

// Destination returns where the package is delivered.
func (p Package) Destination() string {
	return p.destination
}

// Zone returns the shipping zone.
func (p Package) Zone() Zone {
	return p.zone
}

func (p Package) String() string {
	return fmt.Sprintf("%s -> %s (%s, %g kg, %g m³)", p.origin, p.destination, p.zone, p.weightKg, p.volumeM3)
}

func (p *Package) setWeight(weightKg float64) error {
	if err := checkMeasure(weightKg); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", err)
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setVolume(volumeM3 float64) error {
	if err := checkMeasure(volumeM3); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("volumeM3", err)
	}
	p.volumeM3 = volumeM3
	return nil
}

func checkMeasure(v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%v is not a finite number", v)
	case v < 0:
		return fmt.Errorf("%v is negative", v)
	default:
		return nil
	}
}
