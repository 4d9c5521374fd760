package services

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bookings/internal/domain/bookings"
)

// BookingNotifier re-publishes a booking summary onto the notification
// path, for bookings that already exist with the provider (e.g. re-sending
// the operator email from the listing page).
type BookingNotifier struct {
	eventBus  *cqrs.EventBus
	eventName string
}

func NewBookingNotifier(eventBus *cqrs.EventBus, eventName string) *BookingNotifier {
	return &BookingNotifier{
		eventBus:  eventBus,
		eventName: eventName,
	}
}

func (n *BookingNotifier) NotifyBooking(ctx context.Context, booking bookings.Booking) error {
	return n.eventBus.Publish(ctx, bookings.BookingMade{
		Header:    bookings.NewEventHeader(),
		OrderID:   booking.ID,
		EventName: n.eventName,
		Contact:   booking.Contact,
		Tickets:   booking.Tickets,
	})
}
