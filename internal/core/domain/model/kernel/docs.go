// Package kernel provides the shared value objects of the freight domain.
//
// The package includes:
//   - UUID: identifier of quote requests and activity entries
//   - Money: exact decimal amount used by every price, surcharge and multiplier
//
// Both types are immutable and safe to copy. UUID has an invalid zero value
// and must be built through its constructors; the zero Money is a valid zero
// amount.
package kernel
