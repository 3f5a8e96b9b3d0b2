package shipment

import "strings"

// Zone is a coarse shipping-distance category. It is an open key: values
// outside the known constants are valid and priced with a default rate.
type Zone string

const (
	// ZoneLocal covers deliveries inside the origin city.
	ZoneLocal Zone = "local"
	// ZoneRegional covers deliveries inside the origin region.
	ZoneRegional Zone = "regional"
	// ZoneNational covers deliveries anywhere else in the country.
	ZoneNational Zone = "nacional"
)

// ParseZone normalises raw input (surrounding spaces, letter case) without
// restricting it to the known zones.
func ParseZone(raw string) Zone {
	return Zone(strings.ToLower(strings.TrimSpace(raw)))
}

// IsKnown reports whether the zone has its own entry in the zone rate table.
func (z Zone) IsKnown() bool {
	switch z {
	case ZoneLocal, ZoneRegional, ZoneNational:
		return true
	default:
		return false
	}
}

func (z Zone) String() string {
	return string(z)
}

// Zones lists the known zones in ascending distance order.
func Zones() []Zone {
	return []Zone{ZoneLocal, ZoneRegional, ZoneNational}
}
