package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"freight/internal/adapters/in/cli"
	"freight/internal/adapters/out/memory/activitystore"
	"freight/internal/adapters/out/metrics"
	"freight/internal/core/application/journal"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, input string, out io.Writer) (*cli.App, *activitystore.Store) {
	t.Helper()

	store := activitystore.New(0)
	quoteMetrics, err := metrics.NewQuoteMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	app := cli.NewApp(
		commands.NewQuoteShipmentCommandHandler(
			services.NewQuoteService(),
			journal.New(store, slog.New(slog.NewTextHandler(io.Discard, nil))),
			quoteMetrics,
		),
		queries.NewGetRecentActivityQueryHandler(store),
		strings.NewReader(input),
		out,
	)
	return app, store
}

func run(t *testing.T, input string) (string, *activitystore.Store) {
	t.Helper()

	var out bytes.Buffer
	app, store := newApp(t, input, &out)

	require.NoError(t, app.Run(t.Context()))
	return out.String(), store
}

// reportRejectingWriter fails every write that carries the boxed report.
type reportRejectingWriter struct {
	bytes.Buffer
}

func (w *reportRejectingWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("║ SHIPPING QUOTE")) {
		return 0, errors.New("terminal closed")
	}
	return w.Buffer.Write(p)
}

func TestApp_BannerShowsNameAndVersion(t *testing.T) {
	out, _ := run(t, "3\n")

	assert.Contains(t, out, "  Freight quotation system v1.0.0\n")
	assert.Contains(t, out, "Shutting down. Bye!")
}

func TestApp_QuoteWithAddOns(t *testing.T) {
	// origin, destination, zone take defaults
	input := strings.Join([]string{"1", "", "", "", "15", "0.5", "1", "2", "toll, insurance", "", "3"}, "\n") + "\n"

	out, store := run(t, input)

	assert.Contains(t, out, "Origin: São Paulo, SP")
	assert.Contains(t, out, "Destination: Rio de Janeiro, RJ")
	assert.Contains(t, out, "Zone: regional")
	assert.Contains(t, out, "Weight: 15.0 kg")
	assert.Contains(t, out, "Carrier: ExpressLog Padrão")
	assert.Contains(t, out, "Lead time: 5 business days")
	assert.Contains(t, out, "Freight value: R$ 117.65")
	assert.Contains(t, out, "+ Insurance (declared R$ 1500.00): R$ 30.00")
	assert.Contains(t, out, "Shutting down. Bye!")
	assert.Equal(t, 6, store.Len())
}

func TestApp_PortugueseAddOnTagsAreAccepted(t *testing.T) {
	input := strings.Join([]string{"1", "", "", "", "15", "0.5", "1", "2", "pedagio,seguro", "", "3"}, "\n") + "\n"

	out, _ := run(t, input)

	assert.Contains(t, out, "Freight value: R$ 117.65")
}

func TestApp_AllDefaults(t *testing.T) {
	input := strings.Join([]string{"1", "", "", "", "", "", "", "", "", "", "3"}, "\n") + "\n"

	out, _ := run(t, input)

	assert.Contains(t, out, "Weight: 5.0 kg")
	assert.Contains(t, out, "Volume: 0.1 m³")
	assert.Contains(t, out, "Freight value: R$ 45.50")
	assert.Contains(t, out, "Priced by: Zone rate")
}

func TestApp_MalformedMeasuresFallBackToDefaults(t *testing.T) {
	input := strings.Join([]string{"1", "Curitiba, PR", "Porto Alegre, RS", "nacional", "heavy", "0.3", "2", "1", "", "", "3"}, "\n") + "\n"

	out, _ := run(t, input)

	assert.Contains(t, out, "Invalid values! Using defaults.")
	assert.Contains(t, out, "Weight: 5.0 kg")
	// 10 + 5 * 8.50 on the economy tier
	assert.Contains(t, out, "Freight value: R$ 52.50")
}

func TestApp_NegativeWeightIsRejected(t *testing.T) {
	input := strings.Join([]string{"1", "", "", "", "-2", "0.1", "", "3"}, "\n") + "\n"

	out, store := run(t, input)

	assert.Contains(t, out, "Invalid package:")
	assert.NotContains(t, out, "║ SHIPPING QUOTE")
	assert.NotContains(t, out, "Freight value:")
	assert.Equal(t, 0, store.Len())
}

func TestApp_ReportWriteFailureIsShown(t *testing.T) {
	input := strings.Join([]string{"1", "", "", "", "", "", "", "", "", "", "3"}, "\n") + "\n"
	var out reportRejectingWriter
	app, store := newApp(t, input, &out)

	require.NoError(t, app.Run(t.Context()))

	assert.Contains(t, out.String(), "Failed to print the quote: terminal closed")
	assert.NotContains(t, out.String(), "Freight value:")
	assert.Equal(t, 4, store.Len())
}

func TestApp_ShowActivity(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		out, _ := run(t, "2\n\n3\n")

		assert.Contains(t, out, "No activity recorded yet.")
	})

	t.Run("after two quotes only the last ten entries are shown", func(t *testing.T) {
		quote := strings.Join([]string{"1", "", "", "", "", "", "", "", "", ""}, "\n") + "\n"
		input := quote + quote + "2\n\n3\n"

		out, store := run(t, input)

		require.Equal(t, 8, store.Len())
		logSection := out[strings.LastIndex(out, "ACTIVITY LOG"):]
		assert.Equal(t, 8, strings.Count(logSection, "] "))
		assert.Contains(t, logSection, "Quote finished: R$ 45.50")
	})

	t.Run("log is capped at ten lines", func(t *testing.T) {
		quote := strings.Join([]string{"1", "", "", "", "", "", "", "", "toll", ""}, "\n") + "\n"
		input := quote + quote + quote + "2\n\n3\n"

		out, store := run(t, input)

		require.Equal(t, 15, store.Len())
		logSection := out[strings.LastIndex(out, "ACTIVITY LOG"):]
		assert.Equal(t, 10, strings.Count(logSection, "] "))
	})
}

func TestApp_InvalidOption(t *testing.T) {
	out, _ := run(t, "7\n3\n")

	assert.Contains(t, out, "Invalid option!")
}

func TestApp_EndOfInputExits(t *testing.T) {
	out, _ := run(t, "")

	assert.Contains(t, out, "MAIN MENU")
}

func TestApp_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := cli.NewApp(commands.QuoteShipmentCommandHandler{}, queries.GetRecentActivityQueryHandler{},
		strings.NewReader("3\n"), io.Discard)

	assert.ErrorIs(t, app.Run(ctx), context.Canceled)
}
