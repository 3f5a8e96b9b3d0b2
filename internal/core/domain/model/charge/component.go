package charge

import (
	"fmt"
	"slices"

	"freight/internal/core/domain/model/kernel"
)

// Component is a node in the service chain.
type Component interface {
	// Cost returns the accumulated value of this node and everything it wraps.
	Cost() kernel.Money
	// Describe returns the breakdown lines, innermost first. The slice is
	// freshly allocated on every call.
	Describe() []string
}

// Basic is the innermost component: the base value of a pricing strategy.
type Basic struct {
	base         kernel.Money
	strategyName string
}

// NewBasic wraps the base value produced by the named strategy.
func NewBasic(base kernel.Money, strategyName string) Basic {
	return Basic{base: base, strategyName: strategyName}
}

func (b Basic) Cost() kernel.Money {
	return b.base
}

func (b Basic) Describe() []string {
	return []string{fmt.Sprintf("Priced by: %s", b.strategyName)}
}

// decorator holds the wrapped component and the surcharge of one node.
type decorator struct {
	inner     Component
	surcharge kernel.Money
	line      string
}

func (d decorator) Cost() kernel.Money {
	return d.inner.Cost().Add(d.surcharge)
}

func (d decorator) Describe() []string {
	return append(slices.Clone(d.inner.Describe()), d.line)
}
