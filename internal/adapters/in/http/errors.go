package http

import (
	"errors"
	"net/http"

	"expertise/internal/adapters/out/payments"
	"expertise/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application errors to HTTP statuses: validation failures
// to 400, missing aggregates to 404, authorization failures to 403, and
// declined charges to 502. Anything else is an internal error.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrOperationForbidden):
		status = http.StatusForbidden
	case errors.Is(err, payments.ErrChargeDeclined):
		status = http.StatusBadGateway
	}

	return c.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
