package services

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"bookings/internal/domain/bookings"
	"bookings/internal/infrastructure/clients"
	"bookings/internal/observability"
)

// Dietary preferences ride on the order as line-item metadata. The
// vegetarian key is a historical typo baked into stored orders; changing it
// would break reconstruction of existing bookings.
const (
	metadataKeyGlutenFree          = "gluten_free"
	metadataKeyVegetarian          = "vegeterrible"
	metadataKeyDietaryRequirements = "dietary_requirements"
)

type CheckoutClient interface {
	CreatePaymentLink(ctx context.Context, req clients.CreatePaymentLinkRequest) (*clients.PaymentLink, error)
	CreateOrder(ctx context.Context, req clients.CreateOrderRequest) (*clients.Order, error)
}

// CheckoutConfig is the provider configuration injected at construction
// time. Nothing deeper in the checkout path reads the environment.
type CheckoutConfig struct {
	LocationID     string
	ItemID         string
	CatalogVersion int64
}

type CheckoutService struct {
	square   CheckoutClient
	eventBus *cqrs.EventBus
	event    bookings.Event
	cfg      CheckoutConfig
}

func NewCheckoutService(
	square CheckoutClient,
	eventBus *cqrs.EventBus,
	event bookings.Event,
	cfg CheckoutConfig,
) *CheckoutService {
	return &CheckoutService{
		square:   square,
		eventBus: eventBus,
		event:    event,
		cfg:      cfg,
	}
}

// CreatePaymentLink builds the order and asks the provider for a hosted
// checkout link, pre-populated with the buyer's email and E.164 phone
// number. A parseable phone number is mandatory on this path only.
func (s *CheckoutService) CreatePaymentLink(ctx context.Context, booking bookings.NewBooking) (string, error) {
	if err := booking.Contact.Validate(); err != nil {
		return "", err
	}

	num, err := booking.Contact.PhoneNumber()
	if err != nil {
		return "", &bookings.ValidationError{Fields: map[string]string{
			"phone_no": "not a valid UK phone number",
		}}
	}
	phone := phonenumbers.Format(num, phonenumbers.E164)

	req := clients.CreatePaymentLinkRequest{
		IdempotencyKey: uuid.NewString(),
		Description:    s.event.Name,
		Order:          s.buildOrder(booking),
		CheckoutOptions: &clients.CheckoutOptions{
			AllowTipping:          false,
			AskForShippingAddress: false,
			EnableCoupon:          false,
			EnableLoyalty:         false,
		},
		PrePopulatedData: &clients.PrePopulatedData{
			BuyerEmail:       booking.Contact.Email,
			BuyerPhoneNumber: phone,
		},
	}

	link, err := s.square.CreatePaymentLink(ctx, req)
	if err != nil {
		observability.FromContext(ctx).
			WithField("booking_contact", booking.Contact.ID).
			WithError(err).
			Warn("error generating payment link")
		return "", err
	}

	return link.LongURL, nil
}

// CreateOrder creates the order outright, without a payment step, and
// publishes BookingMade for the notification path.
func (s *CheckoutService) CreateOrder(ctx context.Context, booking bookings.NewBooking) (string, error) {
	if err := booking.Contact.Validate(); err != nil {
		return "", err
	}

	req := clients.CreateOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order:          s.buildOrder(booking),
	}

	order, err := s.square.CreateOrder(ctx, req)
	if err != nil {
		observability.FromContext(ctx).
			WithField("booking_contact", booking.Contact.ID).
			WithError(err).
			Warn("error creating order")
		return "", err
	}

	// the order exists with the provider at this point; a failed publish
	// only costs the notification email
	err = s.eventBus.Publish(ctx, bookings.BookingMade{
		Header:    bookings.NewEventHeader(),
		OrderID:   order.ID,
		EventName: s.event.Name,
		Contact:   booking.Contact,
		Tickets:   booking.Tickets,
	})
	if err != nil {
		observability.FromContext(ctx).
			WithField("order_id", order.ID).
			WithError(err).
			Error("failed to publish BookingMade")
	}

	return order.ID, nil
}

// buildOrder maps the submission snapshot to the provider wire shape: one
// line item per ticket, quantity fixed at 1. Every line item carries the
// configured fallback catalog item and version; the per-type SquareItemID
// and SquareCatalogVersion on the domain model are not wired through yet.
func (s *CheckoutService) buildOrder(booking bookings.NewBooking) clients.NewOrder {
	lineItems := make([]clients.NewLineItem, 0, len(booking.Tickets))
	for _, t := range booking.Tickets {
		dietary := t.DietaryRequirements
		if dietary == "" {
			dietary = "none"
		}
		lineItems = append(lineItems, clients.NewLineItem{
			Quantity:        "1",
			CatalogObjectID: s.cfg.ItemID,
			CatalogVersion:  s.cfg.CatalogVersion,
			Metadata: map[string]string{
				metadataKeyGlutenFree:          fmt.Sprintf("%t", t.GlutenFree),
				metadataKeyVegetarian:          fmt.Sprintf("%t", t.Vegetarian),
				metadataKeyDietaryRequirements: dietary,
			},
		})
	}

	return clients.NewOrder{
		CustomerID: snakeCase(booking.Contact.Name),
		LocationID: s.cfg.LocationID,
		LineItems:  lineItems,
	}
}
