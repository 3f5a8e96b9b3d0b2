package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Wire types of openapi.yaml.
type (
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	QuoteRequest struct {
		Origin      string   `json:"origin"`
		Destination string   `json:"destination"`
		Zone        string   `json:"zone"`
		WeightKg    float64  `json:"weight_kg"`
		VolumeM3    float64  `json:"volume_m3"`
		Strategy    string   `json:"strategy,omitempty"`
		Tier        string   `json:"tier,omitempty"`
		AddOns      []string `json:"add_ons,omitempty"`
	}

	Quote struct {
		RequestID    uuid.UUID `json:"request_id"`
		Origin       string    `json:"origin"`
		Destination  string    `json:"destination"`
		Zone         string    `json:"zone"`
		Carrier      string    `json:"carrier"`
		FreightValue float64   `json:"freight_value"`
		LeadTimeDays int       `json:"lead_time_days"`
		Details      []string  `json:"details"`
	}

	ActivityEntry struct {
		ID         uuid.UUID `json:"id"`
		RecordedAt time.Time `json:"recorded_at"`
		Message    string    `json:"message"`
		Line       string    `json:"line"`
	}

	Catalog struct {
		Strategies []CatalogStrategy `json:"strategies"`
		Tiers      []CatalogTier     `json:"tiers"`
		AddOns     []CatalogAddOn    `json:"add_ons"`
		Zones      []string          `json:"zones"`
	}

	CatalogStrategy struct {
		Key  string `json:"key"`
		Code string `json:"code"`
		Name string `json:"name"`
	}

	CatalogTier struct {
		Key          string `json:"key"`
		Code         string `json:"code"`
		Carrier      string `json:"carrier"`
		LeadTimeDays int    `json:"lead_time_days"`
		Multiplier   string `json:"multiplier"`
	}

	CatalogAddOn struct {
		Code  string `json:"code"`
		Label string `json:"label"`
	}

	GetActivityParams struct {
		Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
	}
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/quotes)
	CreateQuote(ctx echo.Context) error
	// (GET /api/v1/activity)
	GetActivity(ctx echo.Context, params GetActivityParams) error
	// (GET /api/v1/catalog)
	GetCatalog(ctx echo.Context) error
}

// serverInterfaceWrapper binds request parameters before calling the handler.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func (w *serverInterfaceWrapper) CreateQuote(ctx echo.Context) error {
	return w.handler.CreateQuote(ctx)
}

func (w *serverInterfaceWrapper) GetActivity(ctx echo.Context) error {
	var params GetActivityParams

	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter limit: " + err.Error(),
		})
	}

	return w.handler.GetActivity(ctx, params)
}

func (w *serverInterfaceWrapper) GetCatalog(ctx echo.Context) error {
	return w.handler.GetCatalog(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts the API operations under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := serverInterfaceWrapper{handler: si}

	router.POST(baseURL+"/quotes", wrapper.CreateQuote)
	router.GET(baseURL+"/activity", wrapper.GetActivity)
	router.GET(baseURL+"/catalog", wrapper.GetCatalog)
}
