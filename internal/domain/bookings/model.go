package bookings

import (
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

// TicketType is an entry of a per-event catalog. Price is an exact
// two-decimal currency value, never a float.
type TicketType struct {
	Name                 string          `json:"name"`
	Price                decimal.Decimal `json:"price"`
	SquareItemID         string          `json:"square_item_id"`
	SquareCatalogVersion int64           `json:"square_catalog_version"`
}

// TicketTypes is the ordered catalog for one event. The first entry is the
// standard type offered when a new ticket is added to a draft.
type TicketTypes []TicketType

// Find returns the first type with the given name. Lookup is case-sensitive
// and keeps first-match semantics when the catalog holds duplicate names.
func (tt TicketTypes) Find(name string) (TicketType, bool) {
	for _, t := range tt {
		if t.Name == name {
			return t, true
		}
	}
	return TicketType{}, false
}

func (tt TicketTypes) Standard() (TicketType, bool) {
	if len(tt) == 0 {
		return TicketType{}, false
	}
	return tt[0], true
}

type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	TicketTypes TicketTypes `json:"ticket_types"`
}

// Ticket embeds a copy of its TicketType: the price is locked when the
// ticket is created, not re-read from the catalog at submission time.
type Ticket struct {
	BookingID           string     `json:"booking_id"`
	TicketType          TicketType `json:"ticket_type"`
	Vegetarian          bool       `json:"vegetarian"`
	GlutenFree          bool       `json:"gluten_free"`
	DietaryRequirements string     `json:"dietary_requirements"`
}

func NewTicket(bookingID string, tt TicketType) Ticket {
	return Ticket{
		BookingID:  bookingID,
		TicketType: tt,
	}
}

type BookingContact struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"min=3"`
	Email   string `json:"email" validate:"email"`
	PhoneNo string `json:"phone_no" validate:"omitempty,gb_phone"`
	EventID string `json:"event_id"`
}

func NewBookingContact(name, email, eventID string) BookingContact {
	return BookingContact{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		EventID: eventID,
	}
}

// PhoneNumber parses the contact's phone number with a GB region default.
func (c BookingContact) PhoneNumber() (*phonenumbers.PhoneNumber, error) {
	num, err := phonenumbers.Parse(c.PhoneNo, "GB")
	if err != nil {
		return nil, err
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, ErrInvalidPhoneNumber
	}
	return num, nil
}

// NewBooking is the immutable submission snapshot of a draft. It is built
// once at submit time and discarded after the provider call.
type NewBooking struct {
	EventID string         `json:"event_id"`
	Contact BookingContact `json:"contact"`
	Tickets []Ticket       `json:"tickets"`
}

// Booking is the read model reconstructed from a provider order. It is
// produced fresh on every listing query and never persisted locally.
type Booking struct {
	ID      string         `json:"id"`
	EventID string         `json:"event_id"`
	Contact BookingContact `json:"contact"`
	Tickets []Ticket       `json:"tickets"`
	Payment Payment        `json:"payment"`
}
