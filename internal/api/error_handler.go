package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/taskvault-api/internal/api/handler"
	"github.com/taskvault/taskvault-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for every API error,
// including 401/403 from the authorization gate and validation failures.
type errorResponse struct {
	Status  int               `json:"status"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Path    string            `json:"path,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Renders validation failures with a field→message map.
//   - Logs unexpected errors internally without leaking details to the
//     client.
//
// 401 and 403 responses carry the request path; the body never hints at
// whether a handle exists or which token check failed.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c)
		if resp.Status == http.StatusUnauthorized || resp.Status == http.StatusForbidden {
			resp.Path = c.Request().URL.Path
		}
		_ = c.JSON(resp.Status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) errorResponse {
	// Validation failures carry a per-field message map.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return errorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Validation Failed",
			Message: "input validation failed",
			Errors:  ve.Fields,
		}
	}

	// Echo's own errors (bind failures, 404 from router, gate rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{
			Status:  he.Code,
			Error:   http.StatusText(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Known domain errors → deterministic HTTP codes. Conflict messages are
	// field-specific; credential failures stay deliberately uniform.
	if code, ok := domainStatus(err); ok {
		return errorResponse{
			Status:  code,
			Error:   http.StatusText(code),
			Message: err.Error(),
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return errorResponse{
		Status:  http.StatusInternalServerError,
		Error:   http.StatusText(http.StatusInternalServerError),
		Message: "internal server error",
	}
}

func domainStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, true
	case errors.Is(err, domain.ErrTodoNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, true
	}
	return 0, false
}
