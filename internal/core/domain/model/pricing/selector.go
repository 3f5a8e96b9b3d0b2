package pricing

import (
	"strconv"
	"strings"
)

// Selector is the enumerated key a caller uses to choose a pricing strategy.
// Menu keys "1".."4" map onto the values below in declaration order.
type Selector int

const (
	// SelectorUnknown is any key that does not name a strategy.
	// Resolve prices it with ByZone.
	SelectorUnknown Selector = iota

	// SelectorByZone picks ByZone (menu key "1").
	SelectorByZone

	// SelectorByWeight picks ByWeight (menu key "2").
	SelectorByWeight

	// SelectorByVolume picks ByVolume (menu key "3").
	SelectorByVolume

	// SelectorExpressWindow picks ExpressWindow (menu key "4").
	SelectorExpressWindow
)

// selectorAliases maps the textual names accepted next to the menu digits.
func selectorAliases() map[string]Selector {
	return map[string]Selector{
		"zone":    SelectorByZone,
		"weight":  SelectorByWeight,
		"volume":  SelectorByVolume,
		"express": SelectorExpressWindow,
	}
}

// ParseSelector maps a raw key onto a Selector. It accepts the menu digits
// and the names "zone", "weight", "volume" and "express", ignoring case and
// surrounding spaces. Anything else yields SelectorUnknown; it is never an
// error.
func ParseSelector(raw string) Selector {
	key := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := selectorAliases()[key]; ok {
		return s
	}
	if n, err := strconv.Atoi(key); err == nil {
		if s := Selector(n); s.IsKnown() {
			return s
		}
	}
	return SelectorUnknown
}

// IsKnown reports whether the selector names a strategy.
func (s Selector) IsKnown() bool {
	return s >= SelectorByZone && s <= SelectorExpressWindow
}

// Key returns the menu key of the selector, or "" for SelectorUnknown.
func (s Selector) Key() string {
	if !s.IsKnown() {
		return ""
	}
	return strconv.Itoa(int(s))
}

func (s Selector) String() string {
	for name, sel := range selectorAliases() {
		if sel == s {
			return name
		}
	}
	return "unknown"
}

// Resolve returns the strategy for s. The default arm covers SelectorByZone,
// SelectorUnknown and out-of-range values.
func Resolve(s Selector) Strategy {
	switch s {
	case SelectorByWeight:
		return NewByWeight()
	case SelectorByVolume:
		return NewByVolume()
	case SelectorExpressWindow:
		return NewExpressWindow()
	default:
		return NewByZone()
	}
}

// Selectors lists the known selectors in menu order.
func Selectors() []Selector {
	return []Selector{SelectorByZone, SelectorByWeight, SelectorByVolume, SelectorExpressWindow}
}
