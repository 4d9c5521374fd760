package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookings/internal/domain/bookings"
)

// EmailBookingHandler re-sends the operator summary for an existing
// booking. The email itself goes out asynchronously via the event router.
func (s *Server) EmailBookingHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var booking bookings.Booking
	if err := c.Bind(&booking); err != nil {
		return err
	}

	if err := s.notifier.NotifyBooking(ctx, booking); err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}
