package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"bookings/internal/domain/bookings"
	"bookings/internal/infrastructure/clients"
	"bookings/internal/observability"
)

// Reconstruction is best-effort by design: a missing customer, an absent
// metadata key or an unparseable value degrades to a safe default and a log
// line. One bad field must never invalidate a whole order.

func (s *ListingService) contactFromOrder(ctx context.Context, order clients.Order) bookings.BookingContact {
	if order.CustomerID == "" {
		observability.FromContext(ctx).
			WithField("order_id", order.ID).
			Warn("no customer id on order")
		return bookings.BookingContact{}
	}

	customer, err := s.square.RetrieveCustomer(ctx, order.CustomerID)
	if err != nil {
		observability.FromContext(ctx).
			WithField("customer_id", order.CustomerID).
			WithError(err).
			Warn("error fetching customer")

		// still displayable: title-case the raw id
		return bookings.BookingContact{
			ID:   order.CustomerID,
			Name: titleCase(order.CustomerID),
		}
	}

	return bookings.BookingContact{
		ID:      customer.ID,
		Name:    strings.TrimSpace(customer.GivenName + " " + customer.FamilyName),
		Email:   customer.EmailAddress,
		PhoneNo: customer.PhoneNumber,
	}
}

func (s *ListingService) bookingFromOrder(ctx context.Context, order clients.Order) bookings.Booking {
	contact := s.contactFromOrder(ctx, order)

	tickets := make([]bookings.Ticket, 0, len(order.LineItems))
	for _, li := range order.LineItems {
		var amount int64
		if li.BasePriceMoney != nil {
			amount = li.BasePriceMoney.Amount
		}

		dietary := metadataString(ctx, li.Metadata, metadataKeyDietaryRequirements)
		if dietary == "none" {
			dietary = ""
		}

		tickets = append(tickets, bookings.Ticket{
			BookingID: order.ID,
			TicketType: bookings.TicketType{
				Name:                 li.VariationName,
				Price:                decimal.New(amount, -2),
				SquareItemID:         li.CatalogObjectID,
				SquareCatalogVersion: li.CatalogVersion,
			},
			Vegetarian:          metadataBool(ctx, li.Metadata, metadataKeyVegetarian),
			GlutenFree:          metadataBool(ctx, li.Metadata, metadataKeyGlutenFree),
			DietaryRequirements: dietary,
		})
	}

	return bookings.Booking{
		ID:      order.ID,
		Contact: contact,
		Tickets: tickets,
		Payment: paymentFromTenders(order.Tenders),
	}
}

// paymentFromTenders sums all settlement amounts into a single payment.
// Any nonzero tender set is classified as a card payment; no cash-detection
// rule exists for reconstructed orders.
func paymentFromTenders(tenders []clients.Tender) bookings.Payment {
	if len(tenders) == 0 {
		return bookings.NotPaid()
	}

	total := decimal.Zero
	for _, t := range tenders {
		if t.AmountMoney == nil {
			continue
		}
		total = total.Add(decimal.New(t.AmountMoney.Amount, -2))
	}
	return bookings.CardPayment(total)
}

func metadataString(ctx context.Context, metadata map[string]string, key string) string {
	value, ok := metadata[key]
	if !ok {
		observability.FromContext(ctx).
			WithField("key", key).
			Warn("metadata key not present")
		return ""
	}
	return value
}

func metadataBool(ctx context.Context, metadata map[string]string, key string) bool {
	value, ok := metadata[key]
	if !ok {
		observability.FromContext(ctx).
			WithField("key", key).
			Warn("metadata key not present")
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		observability.FromContext(ctx).
			WithField("key", key).
			WithField("value", value).
			Warn("error parsing metadata")
		return false
	}
	return parsed
}
