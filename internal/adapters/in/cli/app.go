// Package cli runs the interactive quotation menu over any reader and writer.
//
// The menu offers three options: quote a package, show the last activity
// entries and exit. Empty answers take the default shown in the prompt and a
// malformed weight or volume falls back to the default package measures.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/buildinfo"
)

// Defaults applied to empty answers.
const (
	DefaultOrigin      = "São Paulo, SP"
	DefaultDestination = "Rio de Janeiro, RJ"
	DefaultZone        = shipment.ZoneRegional
	DefaultWeightKg    = 5.0
	DefaultVolumeM3    = 0.1
	DefaultStrategy    = "1"
	DefaultTier        = "2"
)

const banner = "======================================================================"

// App is the interactive menu.
type App struct {
	quoteHandler    commands.QuoteShipmentCommandHandler
	activityHandler queries.GetRecentActivityQueryHandler

	in  *bufio.Scanner
	out io.Writer
}

func NewApp(
	quoteHandler commands.QuoteShipmentCommandHandler,
	activityHandler queries.GetRecentActivityQueryHandler,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		quoteHandler:    quoteHandler,
		activityHandler: activityHandler,
		in:              bufio.NewScanner(in),
		out:             out,
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is
// cancelled. End of input is a normal exit.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.printf("\n%s\n  %s\n%s\n", banner, buildinfo.Info(), banner)
		a.printf("\nMAIN MENU\n1. Quote a shipment\n2. Show activity log\n3. Exit\n")

		option, ok := a.ask("\n> Choose an option: ")
		if !ok {
			return a.in.Err()
		}

		switch option {
		case "1":
			a.quote(ctx)
		case "2":
			a.showActivity(ctx)
		case "3":
			a.printf("\nShutting down. Bye!\n")
			return nil
		default:
			a.printf("\nInvalid option!\n")
			continue
		}

		if _, ok = a.ask("\nPress ENTER to continue..."); !ok {
			return a.in.Err()
		}
	}
}

func (a *App) quote(ctx context.Context) {
	a.printf("\n%s\nNEW SHIPPING QUOTE\n%s\n", banner, banner)

	a.printf("\nPackage:\n")
	origin := a.askDefault("Origin: ", DefaultOrigin)
	destination := a.askDefault("Destination: ", DefaultDestination)

	a.printf("\nAvailable zones: %s\n", joinZones())
	zone := shipment.ParseZone(a.askDefault("Zone: ", DefaultZone.String()))

	weight, weightErr := strconv.ParseFloat(a.askDefault("Weight (kg): ", formatMeasure(DefaultWeightKg)), 64)
	volume, volumeErr := strconv.ParseFloat(a.askDefault("Volume (m³): ", formatMeasure(DefaultVolumeM3)), 64)
	if weightErr != nil || volumeErr != nil {
		a.printf("Invalid values! Using defaults.\n")
		weight, volume = DefaultWeightKg, DefaultVolumeM3
	}

	pkg, err := shipment.NewPackage(weight, volume, origin, destination, zone)
	if err != nil {
		a.printf("Invalid package: %v\n", err)
		return
	}

	a.printf("\nPricing strategy:\n")
	for _, s := range pricing.Selectors() {
		a.printf("%s. %s\n", s.Key(), pricing.Resolve(s).Name())
	}
	selector := pricing.ParseSelector(a.askDefault("Option: ", DefaultStrategy))

	a.printf("\nCarrier tier:\n")
	for _, t := range carrier.Tiers() {
		c := carrier.Resolve(t).CreateCarrier()
		a.printf("%s. %s (%d days)\n", t.Key(), t, c.LeadTimeDays())
	}
	tier := carrier.ParseTier(a.askDefault("Option: ", DefaultTier))

	a.printf("\nAdd-on services (comma separated):\nOptions: toll, insurance, packaging\n")
	services, _ := a.ask("Services: ")
	addOns := charge.ParseAddOnSet(strings.Split(services, ",")...)

	cmd, err := commands.NewQuoteShipmentCommand(kernel.NewUUID(), pkg, selector, tier, addOns)
	if err != nil {
		a.printf("Invalid quote request: %v\n", err)
		return
	}

	a.printf("\nProcessing quote...\n")
	quote, err := a.quoteHandler.Handle(ctx, cmd)
	if err != nil {
		a.printf("Quote failed: %v\n", err)
		return
	}

	if err = RenderQuote(a.out, quote); err != nil {
		a.printf("Failed to print the quote: %v\n", err)
	}
}

func (a *App) showActivity(ctx context.Context) {
	a.printf("\n%s\nACTIVITY LOG\n%s\n", banner, banner)

	query, err := queries.NewGetRecentActivityQuery(queries.DefaultRecentActivityLimit)
	if err != nil {
		a.printf("Failed to read the activity log: %v\n", err)
		return
	}

	entries, err := a.activityHandler.Handle(ctx, query)
	if err != nil {
		a.printf("Failed to read the activity log: %v\n", err)
		return
	}

	if len(entries) == 0 {
		a.printf("No activity recorded yet.\n")
		return
	}

	for _, e := range entries {
		a.printf("%s\n", e.Line)
	}
}

// ask prints prompt and reads one trimmed line. ok is false at end of input.
func (a *App) ask(prompt string) (string, bool) {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) askDefault(prompt, def string) string {
	answer, _ := a.ask(prompt)
	if answer == "" {
		return def
	}
	return answer
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func joinZones() string {
	zones := shipment.Zones()
	names := make([]string, len(zones))
	for i, z := range zones {
		names[i] = z.String()
	}
	return strings.Join(names, ", ")
}
