package charge

import (
	"slices"
	"strings"

	"freight/internal/core/domain/model/kernel"
)

// QuoteDeclaredValue is the declared cargo value insured by a quotation.
var QuoteDeclaredValue = kernel.MustMoney("1500.00")

// AddOn tags an optional service a quotation request may ask for.
type AddOn int

const (
	AddOnUnknown AddOn = iota
	AddOnToll
	AddOnInsurance
	AddOnPackaging
)

// ApplyOrder is the order in which add-ons wrap the basic component.
// It fixes the breakdown order; the total does not depend on it.
var ApplyOrder = []AddOn{AddOnToll, AddOnInsurance, AddOnPackaging}

func addOnNames() map[string]AddOn {
	return map[string]AddOn{
		"toll":      AddOnToll,
		"insurance": AddOnInsurance,
		"packaging": AddOnPackaging,
		"pedagio":   AddOnToll,
		"seguro":    AddOnInsurance,
		"embalagem": AddOnPackaging,
	}
}

// ParseAddOn maps a raw tag onto an AddOn, ignoring case and surrounding
// spaces. The Portuguese tags pedagio, seguro and embalagem are accepted too.
func ParseAddOn(raw string) AddOn {
	if a, ok := addOnNames()[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return a
	}
	return AddOnUnknown
}

// IsKnown reports whether the tag names an add-on.
func (a AddOn) IsKnown() bool {
	return a >= AddOnToll && a <= AddOnPackaging
}

func (a AddOn) String() string {
	switch a {
	case AddOnToll:
		return "toll"
	case AddOnInsurance:
		return "insurance"
	case AddOnPackaging:
		return "packaging"
	default:
		return "unknown"
	}
}

// Label is the human name used in activity messages.
func (a AddOn) Label() string {
	switch a {
	case AddOnToll:
		return "Tolls"
	case AddOnInsurance:
		return "Insurance"
	case AddOnPackaging:
		return "Special packaging"
	default:
		return "Unknown"
	}
}

// Decorate wraps inner with this add-on using the quotation defaults:
// three tolls, insurance on QuoteDeclaredValue and reinforced packaging.
// Unknown add-ons return inner unchanged.
func (a AddOn) Decorate(inner Component) Component {
	switch a {
	case AddOnToll:
		return WithToll(inner, DefaultTollCount)
	case AddOnInsurance:
		return WithInsurance(inner, QuoteDeclaredValue)
	case AddOnPackaging:
		return WithPackaging(inner, DefaultPackagingKind)
	default:
		return inner
	}
}

// AddOns lists the known add-ons in ApplyOrder.
func AddOns() []AddOn {
	return slices.Clone(ApplyOrder)
}

// AddOnSet is an unordered set of requested add-ons. The zero value is an
// empty set ready to use.
type AddOnSet struct {
	items map[AddOn]struct{}
}

// NewAddOnSet builds a set from the given add-ons. Duplicates collapse and
// unknown add-ons are ignored.
func NewAddOnSet(addOns ...AddOn) AddOnSet {
	set := AddOnSet{}
	for _, a := range addOns {
		set = set.With(a)
	}
	return set
}

// ParseAddOnSet builds a set from raw tags. Unrecognised tags are skipped.
func ParseAddOnSet(raw ...string) AddOnSet {
	set := AddOnSet{}
	for _, r := range raw {
		set = set.With(ParseAddOn(r))
	}
	return set
}

// With returns a copy of the set that also contains a.
func (s AddOnSet) With(a AddOn) AddOnSet {
	if !a.IsKnown() {
		return s
	}
	items := make(map[AddOn]struct{}, len(s.items)+1)
	for k := range s.items {
		items[k] = struct{}{}
	}
	items[a] = struct{}{}
	return AddOnSet{items: items}
}

// Has reports whether a is in the set.
func (s AddOnSet) Has(a AddOn) bool {
	_, ok := s.items[a]
	return ok
}

// Len returns the number of add-ons in the set.
func (s AddOnSet) Len() int {
	return len(s.items)
}

// Ordered returns the add-ons of the set in ApplyOrder.
func (s AddOnSet) Ordered() []AddOn {
	result := make([]AddOn, 0, len(s.items))
	for _, a := range ApplyOrder {
		if s.Has(a) {
			result = append(result, a)
		}
	}
	return result
}
