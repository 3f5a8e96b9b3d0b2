// Package services provides domain services that orchestrate a quotation
// across the pricing, charge and carrier models.
//
// The package includes:
//   - QuoteService: runs one quotation request end to end
//   - ActivityRecorder: the sink every pipeline step reports to
//
// The recorder is passed on each call instead of being reached through a
// package-level logger, so callers decide where the activity log lives.
package services
