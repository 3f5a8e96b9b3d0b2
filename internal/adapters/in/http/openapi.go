package http

import (
	_ "embed"
	"errors"
	"net/http"
	"sync"

	"freight/internal/pkg/buildinfo"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// GetSwagger parses and validates the embedded OpenAPI document. The
// document version is the application version.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, err
	}
	doc.Info.Version = buildinfo.Version

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}

// OapiRequestValidator rejects requests that do not match doc with a 400
// Error body. Operations missing from doc answer 404, wrong methods 405.
func OapiRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			switch {
			case errors.Is(err, routers.ErrMethodNotAllowed):
				return c.JSON(http.StatusMethodNotAllowed, Error{
					Code:    http.StatusMethodNotAllowed,
					Message: "Method not allowed",
				})
			case err != nil:
				return c.JSON(http.StatusNotFound, Error{
					Code:    http.StatusNotFound,
					Message: "Route not found",
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    &openapi3filter.Options{MultiError: false},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: requestErrorMessage(err),
				})
			}

			return next(c)
		}
	}, nil
}

func requestErrorMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return "Invalid request"
}

var registerSwaggerOnce sync.Once

// RegisterSwaggerDoc publishes doc as the swag document served by
// echo-swagger under /swagger/doc.json. Only the first call takes effect.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          doc.Info.Version,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	return nil
}
