package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the Echo instance: health check, metrics, swagger UI and
// the validated /api/v1 group.
func NewRouter(server ServerInterface, metricsHandler http.Handler) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := OapiRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metricsHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	RegisterHandlersWithBaseURL(api, server, "")

	return e, nil
}
