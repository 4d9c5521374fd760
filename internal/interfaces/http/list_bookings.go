package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookings/internal/domain/bookings"
)

type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phone_no"`
}

type TicketResponse struct {
	TicketType          string `json:"ticket_type"`
	Price               string `json:"price"`
	Vegetarian          bool   `json:"vegetarian"`
	GlutenFree          bool   `json:"gluten_free"`
	DietaryRequirements string `json:"dietary_requirements"`
}

type PaymentResponse struct {
	Status string `json:"status"`
	Amount string `json:"amount"`
}

type BookingResponse struct {
	ID      string           `json:"id"`
	Contact ContactResponse  `json:"contact"`
	Tickets []TicketResponse `json:"tickets"`
	Payment PaymentResponse  `json:"payment"`
}

func (s *Server) ListBookingsHandler(c echo.Context) error {
	list, err := s.listingService.ListBookings(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, toBookingResponse(b))
	}
	return c.JSON(http.StatusOK, resp)
}

func toBookingResponse(b bookings.Booking) BookingResponse {
	tickets := make([]TicketResponse, 0, len(b.Tickets))
	for _, t := range b.Tickets {
		tickets = append(tickets, TicketResponse{
			TicketType:          t.TicketType.Name,
			Price:               t.TicketType.Price.StringFixed(2),
			Vegetarian:          t.Vegetarian,
			GlutenFree:          t.GlutenFree,
			DietaryRequirements: t.DietaryRequirements,
		})
	}

	return BookingResponse{
		ID: b.ID,
		Contact: ContactResponse{
			ID:      b.Contact.ID,
			Name:    b.Contact.Name,
			Email:   b.Contact.Email,
			PhoneNo: b.Contact.PhoneNo,
		},
		Tickets: tickets,
		Payment: PaymentResponse{
			Status: string(b.Payment.Status),
			Amount: b.Payment.Amount.StringFixed(2),
		},
	}
}
