package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"freight/internal/core/domain/model/shipment"
)

const (
	reportRule = "══════════════════════════════════════════════════════════════"
	reportSep  = "─────────────────────────────────────────────────────────────"
)

// RenderQuote writes the boxed quotation report.
func RenderQuote(w io.Writer, q shipment.Quote) error {
	pkg := q.Package()

	details := "None"
	if d := q.Details(); len(d) > 0 {
		details = strings.Join(d, "\n║     ")
	}

	_, err := fmt.Fprintf(w, `
╔%[1]s
║ SHIPPING QUOTE
╠%[1]s
║ Origin: %[3]s
║ Destination: %[4]s
║ Zone: %[5]s
║ Weight: %[6]s kg
║ Volume: %[7]s m³
║ %[2]s
║ Carrier: %[8]s
║ Lead time: %[9]d business days
║ Freight value: R$ %[10]s
║ %[2]s
║ Breakdown:
║     %[11]s
╚%[1]s
`,
		reportRule, reportSep,
		pkg.Origin(), pkg.Destination(), pkg.Zone(),
		formatMeasure(pkg.WeightKg()), formatMeasure(pkg.VolumeM3()),
		q.CarrierName(), q.LeadTimeDays(), q.FreightValue(),
		details,
	)
	return err
}

// formatMeasure prints whole numbers with one decimal ("5.0") and keeps
// every other value at its shortest form ("0.125").
func formatMeasure(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
