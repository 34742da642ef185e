package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeForbidden    = "FORBIDDEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details *ErrorDetails `json:"details,omitempty"`
}

// ErrorDetails carries the states of a rejected transition, or the admin
// holding the order.
type ErrorDetails struct {
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// NewErrorHandler maps errors returned by handlers and middleware to
// ErrorResponse bodies. Unexpected errors are logged and hidden.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := toResponse(err)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func toResponse(err error) (int, ErrorResponse) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	body := ErrorResponse{Message: err.Error()}

	var transitionErr *order.TransitionError
	if errors.As(err, &transitionErr) {
		body.Details = &ErrorDetails{
			From: transitionErr.From.String(),
			To:   transitionErr.To.String(),
		}
		if transitionErr.AssignedTo != nil {
			body.Details.AssignedTo = transitionErr.AssignedTo.String()
		}
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		body.Code = CodeUnauthorized
		body.Message = ErrUnauthenticated.Error()
		return http.StatusUnauthorized, body
	case errors.Is(err, errs.ErrObjectNotFound):
		body.Code = CodeNotFound
		return http.StatusNotFound, body
	case errors.Is(err, errs.ErrForbidden):
		body.Code = CodeForbidden
		return http.StatusForbidden, body
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		body.Code = CodeValidation
		return http.StatusBadRequest, body
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:    CodeInternal,
		Message: "internal server error",
	}
}

func fromHTTPError(httpErr *echo.HTTPError) (int, ErrorResponse) {
	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}

	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Message: message}
	case http.StatusUnauthorized:
		return http.StatusUnauthorized, ErrorResponse{Code: CodeUnauthorized, Message: message}
	case http.StatusForbidden:
		return http.StatusForbidden, ErrorResponse{Code: CodeForbidden, Message: message}
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return httpErr.Code, ErrorResponse{Code: CodeNotFound, Message: message}
	}

	return httpErr.Code, ErrorResponse{Code: CodeInternal, Message: message}
}
