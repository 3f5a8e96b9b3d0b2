// Package http exposes the quotation use cases over a JSON API served by Echo.
// Requests under /api/v1 are checked against the embedded OpenAPI document
// before they reach the handlers.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface on top of the application handlers.
type Server struct {
	// Command handlers
	quoteShipmentHandler commands.QuoteShipmentCommandHandler

	// Query handlers
	getRecentActivityHandler queries.GetRecentActivityQueryHandler
	getCatalogHandler        queries.GetCatalogQueryHandler
}

func NewServer(
	quoteShipmentHandler commands.QuoteShipmentCommandHandler,
	getRecentActivityHandler queries.GetRecentActivityQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
) *Server {
	return &Server{
		quoteShipmentHandler:     quoteShipmentHandler,
		getRecentActivityHandler: getRecentActivityHandler,
		getCatalogHandler:        getCatalogHandler,
	}
}

// CreateQuote handles POST /api/v1/quotes.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	pkg, err := shipment.NewPackage(req.WeightKg, req.VolumeM3, req.Origin, req.Destination, shipment.ParseZone(req.Zone))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid package: " + err.Error(),
		})
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewQuoteShipmentCommand(
		requestID,
		pkg,
		pricing.ParseSelector(req.Strategy),
		carrier.ParseTier(req.Tier),
		charge.ParseAddOnSet(req.AddOns...),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote request: " + err.Error(),
		})
	}

	quote, err := s.quoteShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute quote",
		})
	}

	return ctx.JSON(http.StatusOK, Quote{
		RequestID:    requestID.Bytes(),
		Origin:       pkg.Origin(),
		Destination:  pkg.Destination(),
		Zone:         pkg.Zone().String(),
		Carrier:      quote.CarrierName(),
		FreightValue: quote.FreightValue().Float64(),
		LeadTimeDays: quote.LeadTimeDays(),
		Details:      quote.Details(),
	})
}

// GetActivity handles GET /api/v1/activity.
func (s *Server) GetActivity(ctx echo.Context, params GetActivityParams) error {
	limit := queries.DefaultRecentActivityLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetRecentActivityQuery(limit)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, errs.ErrValueIsOutOfRange) {
			status = http.StatusInternalServerError
		}
		return ctx.JSON(status, Error{Code: status, Message: err.Error()})
	}

	entries, err := s.getRecentActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve activity",
		})
	}

	response := make([]ActivityEntry, len(entries))
	for i, e := range entries {
		response[i] = ActivityEntry{
			ID:         e.ID.Bytes(),
			RecordedAt: e.RecordedAt,
			Message:    e.Message,
			Line:       e.Line,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	catalog, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build catalog",
		})
	}

	response := Catalog{
		Strategies: make([]CatalogStrategy, len(catalog.Strategies)),
		Tiers:      make([]CatalogTier, len(catalog.Tiers)),
		AddOns:     make([]CatalogAddOn, len(catalog.AddOns)),
		Zones:      catalog.Zones,
	}
	for i, st := range catalog.Strategies {
		response.Strategies[i] = CatalogStrategy{Key: st.Key, Code: st.Code, Name: st.Name}
	}
	for i, t := range catalog.Tiers {
		response.Tiers[i] = CatalogTier{
			Key:          t.Key,
			Code:         t.Code,
			Carrier:      t.CarrierName,
			LeadTimeDays: t.LeadTimeDays,
			Multiplier:   t.Multiplier,
		}
	}
	for i, a := range catalog.AddOns {
		response.AddOns[i] = CatalogAddOn{Code: a.Code, Label: a.Label}
	}

	return ctx.JSON(http.StatusOK, response)
}
