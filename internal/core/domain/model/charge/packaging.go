package charge

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
)

// PackagingKind names a special packaging. It is an open key: unknown kinds
// are charged like reinforced packaging.
type PackagingKind string

const (
	PackagingReinforced PackagingKind = "reinforced"
	PackagingThermal    PackagingKind = "thermal"
	PackagingAntistatic PackagingKind = "antistatic"

	// DefaultPackagingKind is used when a request only asks for packaging.
	DefaultPackagingKind = PackagingReinforced
)

var (
	packagingFees = map[PackagingKind]kernel.Money{
		PackagingReinforced: kernel.MustMoney("25.00"),
		PackagingThermal:    kernel.MustMoney("45.00"),
		PackagingAntistatic: kernel.MustMoney("55.00"),
	}
	defaultPackagingFee = kernel.MustMoney("25.00")
)

// Fee returns the packaging fee of the kind, or 25.00 for unknown kinds.
func (k PackagingKind) Fee() kernel.Money {
	if fee, ok := packagingFees[k]; ok {
		return fee
	}
	return defaultPackagingFee
}

// Packaging adds the fee of a special packaging kind.
type Packaging struct {
	decorator
	kind PackagingKind
}

// WithPackaging wraps inner with the packaging of the given kind.
func WithPackaging(inner Component, kind PackagingKind) Packaging {
	fee := kind.Fee()
	return Packaging{
		decorator: decorator{
			inner:     inner,
			surcharge: fee,
			line:      fmt.Sprintf("+ Packaging %s: R$ %s", kind, fee),
		},
		kind: kind,
	}
}

// Kind returns the packaging kind as requested.
func (p Packaging) Kind() PackagingKind {
	return p.kind
}
