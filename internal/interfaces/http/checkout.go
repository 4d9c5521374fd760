package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookings/internal/domain/bookings"
)

type CreatePaymentLinkResponse struct {
	URL string `json:"url"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreatePaymentLinkHandler takes the submission snapshot and returns the
// provider's hosted checkout URL for the browser to navigate to.
func (s *Server) CreatePaymentLinkHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var booking bookings.NewBooking
	if err := c.Bind(&booking); err != nil {
		return err
	}

	url, err := s.checkoutService.CreatePaymentLink(ctx, booking)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CreatePaymentLinkResponse{URL: url})
}

// CreateOrderHandler creates the order outright, without a payment step.
func (s *Server) CreateOrderHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var booking bookings.NewBooking
	if err := c.Bind(&booking); err != nil {
		return err
	}

	orderID, err := s.checkoutService.CreateOrder(ctx, booking)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID})
}
