package http

import (
	"context"
	"errors"
	"net/http"

	"galapagos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error kind to its HTTP status code. Out-of-range values
// are checked before the other validation kinds since they describe a
// well-formed request the current state cannot accept.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an ErrorResponse. Internal errors are logged and their
// message is not exposed.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(code)
	}
	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

// deleted answers a delete that reports whether the target existed.
func (s *Server) deleted(c echo.Context, existed bool, err error) error {
	if err != nil {
		return s.fail(c, err)
	}
	if !existed {
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: http.StatusNotFound, Message: "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
