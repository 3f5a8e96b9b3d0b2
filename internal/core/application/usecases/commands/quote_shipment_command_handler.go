package commands

import (
	"context"

	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// QuoteShipmentCommandHandler runs the quotation pipeline and reports the
// outcome to the metrics port. Every pipeline step lands in the recorder.
//
// Example:
//
//	handler := NewQuoteShipmentCommandHandler(services.NewQuoteService(), journal, metrics)
//	quote, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quotation failed: %w", err)
//	}
//	fmt.Printf("%s: R$ %s in %d days\n", quote.CarrierName(), quote.FreightValue(), quote.LeadTimeDays())
type QuoteShipmentCommandHandler struct {
	service  services.QuoteService
	recorder services.ActivityRecorder
	metrics  ports.QuoteMetrics
}

func NewQuoteShipmentCommandHandler(
	service services.QuoteService,
	recorder services.ActivityRecorder,
	metrics ports.QuoteMetrics,
) QuoteShipmentCommandHandler {
	return QuoteShipmentCommandHandler{
		service:  service,
		recorder: recorder,
		metrics:  metrics,
	}
}

// Handle validates cmd and returns the computed quote.
func (h QuoteShipmentCommandHandler) Handle(ctx context.Context, cmd QuoteShipmentCommand) (shipment.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Quote{}, err
	}

	quote, err := h.service.Quote(ctx, h.recorder, cmd.Package(), cmd.Selector(), cmd.Tier(), cmd.AddOns())
	if err != nil {
		return shipment.Quote{}, err
	}

	h.metrics.ObserveQuote(pricing.Resolve(cmd.Selector()).Name(), quote.CarrierName(), quote.FreightValue().Float64())
	return quote, nil
}
