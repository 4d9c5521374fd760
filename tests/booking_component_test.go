//go:build component

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/stretchr/testify/require"

	"bookings/internal/infrastructure/clients"
)

type bookingRequest struct {
	EventID string          `json:"event_id"`
	Contact contactRequest  `json:"contact"`
	Tickets []ticketRequest `json:"tickets"`
}

type contactRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phone_no"`
	EventID string `json:"event_id"`
}

type ticketRequest struct {
	TicketType          ticketTypeRequest `json:"ticket_type"`
	Vegetarian          bool              `json:"vegetarian"`
	GlutenFree          bool              `json:"gluten_free"`
	DietaryRequirements string            `json:"dietary_requirements"`
}

type ticketTypeRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func validBookingRequest() bookingRequest {
	return bookingRequest{
		EventID: "xmas2023",
		Contact: contactRequest{
			ID:      "b7b0cc69-7e6d-4060-9731-0cdfe89c9d41",
			Name:    "Joe Bloggs",
			Email:   "joe@bloggs.com",
			PhoneNo: "07911123456",
			EventID: "xmas2023",
		},
		Tickets: []ticketRequest{
			{
				TicketType: ticketTypeRequest{Name: "Adult", Price: "15.00"},
				Vegetarian: true,
			},
			{
				TicketType:          ticketTypeRequest{Name: "Child", Price: "8.00"},
				GlutenFree:          true,
				DietaryRequirements: "only cheese",
			},
		},
	}
}

func (s *ComponentTestSuite) postJSON(path string, body any) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(s.T(), err)

	resp, err := s.httpClient.Post(s.baseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(s.T(), err)
	return resp
}

func (s *ComponentTestSuite) TestGetEvent() {
	resp, err := s.httpClient.Get(s.baseURL + "/event")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var event struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		TicketTypes []struct {
			Name  string `json:"name"`
			Price string `json:"price"`
		} `json:"ticket_types"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&event))
	require.Equal(s.T(), "xmas2023", event.ID)
	require.Equal(s.T(), "Little Stukeley Christmas Dinner", event.Name)
	require.Len(s.T(), event.TicketTypes, 2)
	require.Equal(s.T(), "Adult", event.TicketTypes[0].Name)
	require.Equal(s.T(), "15.00", event.TicketTypes[0].Price)
}

// Creating an order must record it with the provider and notify the
// operator by email through the event router.
func (s *ComponentTestSuite) TestCreateOrderSendsEmail() {
	before := s.square.orderCount()
	sentBefore := len(s.emailSender.all())

	resp := s.postJSON("/orders", validBookingRequest())
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var created struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(s.T(), created.OrderID)
	require.Equal(s.T(), before+1, s.square.orderCount())

	require.Eventually(s.T(), func() bool {
		return len(s.emailSender.all()) > sentBefore
	}, 15*time.Second, 100*time.Millisecond, "no booking summary email was sent")

	sent := s.emailSender.all()
	last := sent[len(sent)-1]
	require.Equal(s.T(), "Little Stukeley Christmas Dinner", last.EventName)
	require.Equal(s.T(), "Joe Bloggs", last.Contact.Name)
	require.Len(s.T(), last.Tickets, 2)
}

func (s *ComponentTestSuite) TestCreatePaymentLink() {
	resp := s.postJSON("/payment-links", validBookingRequest())
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var link struct {
		URL string `json:"url"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&link))
	require.Contains(s.T(), link.URL, "https://square.test/pay/")
}

// The payment-link flow needs a phone number; the direct-order flow does not.
func (s *ComponentTestSuite) TestPaymentLinkRequiresPhone() {
	booking := validBookingRequest()
	booking.Contact.PhoneNo = ""

	resp := s.postJSON("/payment-links", booking)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ComponentTestSuite) TestOrderValidation() {
	booking := validBookingRequest()
	booking.Contact.Email = "not-an-email"

	resp := s.postJSON("/orders", booking)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(s.T(), body.Fields, "email")
}

// Listing reconstructs what checkout stored, resolving the contact through
// the provider's customer endpoint.
func (s *ComponentTestSuite) TestListBookings() {
	s.square.addCustomer(clients.Customer{
		ID:           "joe_bloggs",
		GivenName:    "Joe",
		FamilyName:   "Bloggs",
		EmailAddress: "joe@bloggs.com",
		PhoneNumber:  "+447911123456",
	})

	resp := s.postJSON("/orders", validBookingRequest())
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp, err := s.httpClient.Get(s.baseURL + "/bookings")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var list []struct {
		ID      string `json:"id"`
		Contact struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"contact"`
		Tickets []struct {
			Vegetarian          bool   `json:"vegetarian"`
			GlutenFree          bool   `json:"gluten_free"`
			DietaryRequirements string `json:"dietary_requirements"`
		} `json:"tickets"`
		Payment struct {
			Status string `json:"status"`
		} `json:"payment"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&list))
	require.NotEmpty(s.T(), list)

	last := list[len(list)-1]
	require.Equal(s.T(), "Joe Bloggs", last.Contact.Name)
	require.Equal(s.T(), "joe@bloggs.com", last.Contact.Email)
	require.Equal(s.T(), "not_paid", last.Payment.Status)
	require.Len(s.T(), last.Tickets, 2)
	require.True(s.T(), last.Tickets[0].Vegetarian)
	require.True(s.T(), last.Tickets[1].GlutenFree)
	require.Equal(s.T(), "only cheese", last.Tickets[1].DietaryRequirements)
}

// Re-sending the summary for an existing booking goes through the same
// event path as a fresh order.
func (s *ComponentTestSuite) TestEmailBooking() {
	sentBefore := len(s.emailSender.all())

	payload := map[string]any{
		"id": "ORDER1",
		"contact": map[string]any{
			"id":    "joe_bloggs",
			"name":  "Joe Bloggs",
			"email": "joe@bloggs.com",
		},
		"tickets": []map[string]any{
			{"ticket_type": map[string]any{"name": "Adult", "price": "15.00"}},
		},
	}

	resp := s.postJSON("/bookings/email", payload)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusAccepted, resp.StatusCode)

	require.Eventually(s.T(), func() bool {
		return len(s.emailSender.all()) > sentBefore
	}, 15*time.Second, 100*time.Millisecond, "no summary email was re-sent")
}
