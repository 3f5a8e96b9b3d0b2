// Package errs provides standardized error types for the freight application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain model and the application layer.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an accepted range
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Unknown selector keys (zone, pricing strategy, carrier tier, packaging kind)
// are not errors anywhere in the application: they degrade to a documented
// default. These types cover malformed values only.
package errs
