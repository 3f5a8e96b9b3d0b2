// Package shipment provides the values a quotation starts from and ends with.
//
// The package includes:
//   - Zone: the open shipping-distance key used by zone pricing
//   - Package: the immutable description of what is shipped and where
//   - Quote: the immutable result of a quotation request
//
// Key business rules:
//   - Weight and volume are finite and never negative
//   - Unknown zones are accepted; pricing degrades them to a default rate
//   - A quote always names a carrier and a positive lead time
//   - Quotes are never mutated after construction
package shipment
