package metrics_test

import (
	"strings"
	"testing"

	"freight/internal/adapters/out/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMetrics_ObserveQuote(t *testing.T) {
	// Given
	reg := prometheus.NewRegistry()
	m, err := metrics.NewQuoteMetrics(reg)
	require.NoError(t, err)

	// When
	m.ObserveQuote("Zone rate", "ExpressLog Padrão", 117.65)
	m.ObserveQuote("Zone rate", "ExpressLog Padrão", 45.5)
	m.ObserveQuote("Weight rate", "RapidLog Express", 247.5)

	// Then
	expected := `
# HELP freight_quotes_total Number of completed quotations.
# TYPE freight_quotes_total counter
freight_quotes_total{carrier="ExpressLog Padrão",strategy="Zone rate"} 2
freight_quotes_total{carrier="RapidLog Express",strategy="Weight rate"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "freight_quotes_total"))

	count, err := testutil.GatherAndCount(reg, "freight_quote_freight_value_brl")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewQuoteMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewQuoteMetrics(reg)
	require.NoError(t, err)

	_, err = metrics.NewQuoteMetrics(reg)

	require.Error(t, err)
}
