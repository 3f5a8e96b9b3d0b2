// Package pricing provides the interchangeable rules that turn a package into
// a base freight value.
//
// The package includes:
//   - Strategy: the pricing rule contract
//   - ByZone, ByWeight, ByVolume, ExpressWindow: the four available rules
//   - Selector: the enumerated key a caller uses to pick a rule
//
// Every strategy is pure and stateless apart from its constant rate table,
// and none of them can fail. Unknown zones and unknown selector keys degrade
// to documented defaults instead of being reported as errors.
package pricing
