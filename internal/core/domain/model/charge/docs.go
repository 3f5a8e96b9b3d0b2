// Package charge composes a base freight value with optional add-on services.
//
// The package includes:
//   - Component: the cost and breakdown contract shared by every node
//   - Basic: the undecorated base value produced by a pricing strategy
//   - Toll, Insurance, Packaging: stackable surcharges that wrap a Component
//   - AddOn and AddOnSet: the enumerated add-on tags a quotation request carries
//
// Each decorator owns the component it wraps, forming a single chain with no
// sharing and no cycles:
//
//	cost(node)     = cost(inner) + surcharge(node)
//	describe(node) = describe(inner) ++ [line(node)]
//
// Addition is commutative, so the order of decoration changes the breakdown
// order but never the total. Applying the same decoration twice charges it twice.
package charge
