package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogQueryHandler_Handle(t *testing.T) {
	resp, err := queries.NewGetCatalogQueryHandler().Handle(t.Context(), queries.NewGetCatalogQuery())

	require.NoError(t, err)

	assert.Equal(t, []queries.StrategyItem{
		{Key: "1", Code: "zone", Name: "Zone rate"},
		{Key: "2", Code: "weight", Name: "Weight rate"},
		{Key: "3", Code: "volume", Name: "Volume rate"},
		{Key: "4", Code: "express", Name: "Express window"},
	}, resp.Strategies)

	assert.Equal(t, []queries.TierItem{
		{Key: "1", Code: "economy", CarrierName: "TransLog Econômica", LeadTimeDays: 10, Multiplier: "1"},
		{Key: "2", Code: "standard", CarrierName: "ExpressLog Padrão", LeadTimeDays: 5, Multiplier: "1.3"},
		{Key: "3", Code: "express", CarrierName: "RapidLog Express", LeadTimeDays: 2, Multiplier: "1.8"},
	}, resp.Tiers)

	assert.Equal(t, []queries.AddOnItem{
		{Code: "toll", Label: "Tolls"},
		{Code: "insurance", Label: "Insurance"},
		{Code: "packaging", Label: "Special packaging"},
	}, resp.AddOns)

	assert.Equal(t, []string{"local", "regional", "nacional"}, resp.Zones)
}

func TestGetCatalogQueryHandler_Handle_ValidationError(t *testing.T) {
	_, err := queries.NewGetCatalogQueryHandler().Handle(t.Context(), queries.GetCatalogQuery{})

	require.ErrorIs(t, err, queries.ErrGetCatalogQueryIsNotConstructed)
}
