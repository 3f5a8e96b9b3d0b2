package carrier_test

import (
	"testing"

	"freight/internal/core/domain/model/carrier"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	testCases := []struct {
		raw      string
		expected carrier.Tier
	}{
		{"1", carrier.TierEconomy},
		{"2", carrier.TierStandard},
		{"3", carrier.TierExpress},
		{" Express ", carrier.TierExpress},
		{"economy", carrier.TierEconomy},
		{"0", carrier.TierUnknown},
		{"4", carrier.TierUnknown},
		{"overnight", carrier.TierUnknown},
		{"", carrier.TierUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, carrier.ParseTier(tc.raw))
		})
	}
}

func TestResolve(t *testing.T) {
	assert.IsType(t, carrier.EconomyFactory{}, carrier.Resolve(carrier.TierEconomy))
	assert.IsType(t, carrier.StandardFactory{}, carrier.Resolve(carrier.TierStandard))
	assert.IsType(t, carrier.ExpressFactory{}, carrier.Resolve(carrier.TierExpress))

	t.Run("unknown tiers fall back to standard", func(t *testing.T) {
		assert.IsType(t, carrier.StandardFactory{}, carrier.Resolve(carrier.TierUnknown))
		assert.IsType(t, carrier.StandardFactory{}, carrier.Resolve(carrier.Tier(9)))
		assert.IsType(t, carrier.StandardFactory{}, carrier.Resolve(carrier.ParseTier("x")))
	})
}

func TestTier_KeyRoundTrip(t *testing.T) {
	for _, tier := range carrier.Tiers() {
		assert.Equal(t, tier, carrier.ParseTier(tier.Key()))
		assert.Equal(t, tier, carrier.ParseTier(tier.String()))
	}
	assert.Empty(t, carrier.TierUnknown.Key())
}
