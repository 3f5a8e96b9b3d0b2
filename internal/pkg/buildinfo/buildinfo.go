// Package buildinfo names the application and its release version.
//
// The CLI banner and the OpenAPI document both read from here, so a release
// bumps Version in one place.
package buildinfo

import "fmt"

const (
	Name    = "Freight quotation system"
	Version = "1.0.0"
)

// Info returns "<Name> v<Version>".
func Info() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}
