package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists what a quotation request can choose from.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse is the catalog read model. Entries are in menu order.
type GetCatalogQueryResponse struct {
	Strategies []StrategyItem
	Tiers      []TierItem
	AddOns     []AddOnItem
	Zones      []string
}

type StrategyItem struct {
	Key  string
	Code string
	Name string
}

type TierItem struct {
	Key          string
	Code         string
	CarrierName  string
	LeadTimeDays int
	Multiplier   string
}

type AddOnItem struct {
	Code  string
	Label string
}
