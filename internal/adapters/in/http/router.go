// Package http is the REST adapter: it authenticates callers, validates
// requests against internal/api/openapi.json and maps use case errors to
// status codes.
package http

import (
	"log/slog"

	"shasanseva/internal/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter assembles the echo instance serving every route of the service.
func NewRouter(server ServerInterface, auth *Authenticator, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}

	validate, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	e.GET("/health", Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server,
		[]echo.MiddlewareFunc{auth.Authenticate, RequireUserType(UserTypeUser), validate},
		[]echo.MiddlewareFunc{auth.Authenticate, RequireUserType(UserTypeAdmin), validate},
	)

	return e, nil
}
