package bookings

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return NewEventHeaderWithIdempotencyKey(uuid.NewString())
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

// BookingMade is published after an order is created with the provider.
// It carries everything the notification path needs, so handlers never have
// to call back into the provider.
type BookingMade struct {
	Header    EventHeader    `json:"header"`
	OrderID   string         `json:"order_id"`
	EventName string         `json:"event_name"`
	Contact   BookingContact `json:"contact"`
	Tickets   []Ticket       `json:"tickets"`
}
