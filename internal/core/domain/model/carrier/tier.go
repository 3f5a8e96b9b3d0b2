package carrier

import (
	"strconv"
	"strings"
)

// Tier is the enumerated key a caller uses to choose a carrier.
// Menu keys "1".."3" map onto the values below in declaration order.
type Tier int

const (
	// TierUnknown is any key that does not name a tier. Resolve treats it as
	// TierStandard.
	TierUnknown Tier = iota
	TierEconomy
	TierStandard
	TierExpress
)

func tierNames() map[string]Tier {
	return map[string]Tier{
		"economy":  TierEconomy,
		"standard": TierStandard,
		"express":  TierExpress,
	}
}

// ParseTier maps a raw key onto a Tier. Digits "1".."3" and the tier names
// are accepted; anything else yields TierUnknown.
func ParseTier(raw string) Tier {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := tierNames()[key]; ok {
		return t
	}
	if n, err := strconv.Atoi(key); err == nil {
		if t := Tier(n); t.IsKnown() {
			return t
		}
	}
	return TierUnknown
}

func (t Tier) IsKnown() bool {
	return t >= TierEconomy && t <= TierExpress
}

// Key returns the menu key of the tier, or "" for TierUnknown.
func (t Tier) Key() string {
	if !t.IsKnown() {
		return ""
	}
	return strconv.Itoa(int(t))
}

func (t Tier) String() string {
	switch t {
	case TierEconomy:
		return "economy"
	case TierStandard:
		return "standard"
	case TierExpress:
		return "express"
	default:
		return "unknown"
	}
}

// Resolve returns the factory of t. The default arm covers TierUnknown and
// out-of-range values with the standard tier.
func Resolve(t Tier) Factory {
	switch t {
	case TierEconomy:
		return EconomyFactory{}
	case TierExpress:
		return ExpressFactory{}
	default:
		return StandardFactory{}
	}
}

// Tiers lists the known tiers in menu order.
func Tiers() []Tier {
	return []Tier{TierEconomy, TierStandard, TierExpress}
}
