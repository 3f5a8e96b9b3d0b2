package queries

import (
	"context"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
)

// GetCatalogQueryHandler builds the catalog from the domain tables.
type GetCatalogQueryHandler struct{}

func NewGetCatalogQueryHandler() GetCatalogQueryHandler {
	return GetCatalogQueryHandler{}
}

func (h GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	var resp GetCatalogQueryResponse

	for _, s := range pricing.Selectors() {
		resp.Strategies = append(resp.Strategies, StrategyItem{
			Key:  s.Key(),
			Code: s.String(),
			Name: pricing.Resolve(s).Name(),
		})
	}

	for _, t := range carrier.Tiers() {
		c := carrier.Resolve(t).CreateCarrier()
		resp.Tiers = append(resp.Tiers, TierItem{
			Key:          t.Key(),
			Code:         t.String(),
			CarrierName:  c.Name(),
			LeadTimeDays: c.LeadTimeDays(),
			Multiplier:   c.Multiplier().String(),
		})
	}

	for _, a := range charge.AddOns() {
		resp.AddOns = append(resp.AddOns, AddOnItem{Code: a.String(), Label: a.Label()})
	}

	for _, z := range shipment.Zones() {
		resp.Zones = append(resp.Zones, z.String())
	}

	return resp, nil
}
