package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bookings/internal/domain/bookings"
	"bookings/internal/observability"
)

type EmailSender interface {
	SendBookingSummary(ctx context.Context, eventName string, contact bookings.BookingContact, tickets []bookings.Ticket) error
}

// BookingEmailHandler sends the operator summary email for every
// BookingMade event. Failures are retried by the router's retry middleware.
func BookingEmailHandler(sender EmailSender) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"booking_email_handler",
		func(ctx context.Context, payload *bookings.BookingMade) error {
			observability.FromContext(ctx).
				WithField("order_id", payload.OrderID).
				Info("Sending booking summary email")

			return sender.SendBookingSummary(ctx, payload.EventName, payload.Contact, payload.Tickets)
		},
	)
}
