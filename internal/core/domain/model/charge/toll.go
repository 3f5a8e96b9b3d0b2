package charge

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
)

// DefaultTollCount is the number of toll plazas charged when a request only
// asks for the toll add-on.
const DefaultTollCount = 3

var tollFee = kernel.MustMoney("8.50")

// Toll adds count × 8.50 in road tolls.
type Toll struct {
	decorator
	count int
}

// WithToll wraps inner with count toll plazas. count is expected to be >= 0.
func WithToll(inner Component, count int) Toll {
	surcharge := tollFee.MulInt(count)
	return Toll{
		decorator: decorator{
			inner:     inner,
			surcharge: surcharge,
			line:      fmt.Sprintf("+ Tolls (%dx): R$ %s", count, surcharge),
		},
		count: count,
	}
}

// Count returns the number of toll plazas charged.
func (t Toll) Count() int {
	return t.count
}
