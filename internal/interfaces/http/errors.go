package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bookings/internal/domain/bookings"
	"bookings/internal/infrastructure/clients"
)

// Validation failures come back as field-level messages for the form;
// provider failures pass the raw body through for the dismissable
// error notification.

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

type ProviderErrorResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	var verr *bookings.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Message: "validation failed",
			Fields:  verr.Fields,
		})
	}

	var perr *clients.ProviderError
	if errors.As(err, &perr) {
		return c.JSON(http.StatusBadGateway, ProviderErrorResponse{
			Message: perr.Body,
		})
	}

	return err
}
