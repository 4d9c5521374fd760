package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bookings/internal/application/services"
	"bookings/internal/domain/bookings"
	"bookings/internal/observability"
)

type Server struct {
	e    *echo.Echo
	addr string

	event           bookings.Event
	checkoutService *services.CheckoutService
	listingService  *services.ListingService
	notifier        *services.BookingNotifier
}

func NewServer(
	addr string,
	event bookings.Event,
	checkoutService *services.CheckoutService,
	listingService *services.ListingService,
	notifier *services.BookingNotifier,
	routerIsRunning func() bool,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	srv := &Server{
		e:               e,
		addr:            addr,
		event:           event,
		checkoutService: checkoutService,
		listingService:  listingService,
		notifier:        notifier,
	}

	e.GET("/event", srv.GetEventHandler)
	e.POST("/payment-links", srv.CreatePaymentLinkHandler)
	e.POST("/orders", srv.CreateOrderHandler)
	e.GET("/bookings", srv.ListBookingsHandler)
	e.POST("/bookings/email", srv.EmailBookingHandler)

	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})

	// logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			observability.FromContext(c.Request().Context()).
				WithField("path", c.Request().URL.Path).
				Info("Handling a request")

			err := next(c)

			if err != nil {
				observability.FromContext(c.Request().Context()).
					WithField("error", err).
					Error("Request handling error")
			}

			return err
		}
	})

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
