package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type TicketTypeResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type EventResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Tagline     string               `json:"tagline"`
	TicketTypes []TicketTypeResponse `json:"ticket_types"`
}

// GetEventHandler serves the catalog the booking form is built from.
func (s *Server) GetEventHandler(c echo.Context) error {
	ticketTypes := make([]TicketTypeResponse, 0, len(s.event.TicketTypes))
	for _, tt := range s.event.TicketTypes {
		ticketTypes = append(ticketTypes, TicketTypeResponse{
			Name:  tt.Name,
			Price: tt.Price.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, EventResponse{
		ID:          s.event.ID,
		Name:        s.event.Name,
		Tagline:     s.event.Tagline,
		TicketTypes: ticketTypes,
	})
}
