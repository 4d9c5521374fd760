package services

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"

	"bookings/internal/infrastructure/clients"
	"bookings/internal/interfaces/events"
)

// stubSquare fakes the provider; unset operations fail the test if called.
type stubSquare struct {
	t *testing.T

	createPaymentLink func(ctx context.Context, req clients.CreatePaymentLinkRequest) (*clients.PaymentLink, error)
	createOrder       func(ctx context.Context, req clients.CreateOrderRequest) (*clients.Order, error)
	searchOrders      func(ctx context.Context, req clients.SearchOrdersRequest) ([]clients.Order, error)
	retrieveCustomer  func(ctx context.Context, customerID string) (*clients.Customer, error)
}

func (s *stubSquare) CreatePaymentLink(ctx context.Context, req clients.CreatePaymentLinkRequest) (*clients.PaymentLink, error) {
	require.NotNil(s.t, s.createPaymentLink, "unexpected CreatePaymentLink call")
	return s.createPaymentLink(ctx, req)
}

func (s *stubSquare) CreateOrder(ctx context.Context, req clients.CreateOrderRequest) (*clients.Order, error) {
	require.NotNil(s.t, s.createOrder, "unexpected CreateOrder call")
	return s.createOrder(ctx, req)
}

func (s *stubSquare) SearchOrders(ctx context.Context, req clients.SearchOrdersRequest) ([]clients.Order, error) {
	require.NotNil(s.t, s.searchOrders, "unexpected SearchOrders call")
	return s.searchOrders(ctx, req)
}

func (s *stubSquare) RetrieveCustomer(ctx context.Context, customerID string) (*clients.Customer, error) {
	require.NotNil(s.t, s.retrieveCustomer, "unexpected RetrieveCustomer call")
	return s.retrieveCustomer(ctx, customerID)
}

func newTestEventBus(t *testing.T) (*cqrs.EventBus, *gochannel.GoChannel) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus, err := events.NewEventBus(pubSub, watermill.NopLogger{})
	require.NoError(t, err)
	return bus, pubSub
}
