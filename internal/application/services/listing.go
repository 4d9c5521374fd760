package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bookings/internal/domain/bookings"
	"bookings/internal/infrastructure/clients"
	"bookings/internal/observability"
)

// customerLookupLimit bounds the customer-resolution fan-out so a long
// listing does not trip the provider's rate limits.
const customerLookupLimit = 10

type ListingClient interface {
	SearchOrders(ctx context.Context, req clients.SearchOrdersRequest) ([]clients.Order, error)
	RetrieveCustomer(ctx context.Context, customerID string) (*clients.Customer, error)
}

// ListingConfig identifies which orders belong to this deployment: the
// provider location plus the source name stamped on orders we create.
type ListingConfig struct {
	LocationID string
	SourceName string
}

type ListingService struct {
	square ListingClient
	cfg    ListingConfig
}

func NewListingService(square ListingClient, cfg ListingConfig) *ListingService {
	return &ListingService{
		square: square,
		cfg:    cfg,
	}
}

// ListBookings searches the provider for this deployment's open orders and
// reconstructs a booking per order. The search failing is fatal; a single
// order's customer lookup failing is not. Results keep the provider's
// order sequence regardless of lookup completion order.
func (s *ListingService) ListBookings(ctx context.Context) ([]bookings.Booking, error) {
	observability.FromContext(ctx).Info("listing bookings")

	orders, err := s.square.SearchOrders(ctx, clients.SearchOrdersRequest{
		LocationIDs: []string{s.cfg.LocationID},
		Query: &clients.SearchOrdersQuery{
			Filter: &clients.SearchOrdersFilter{
				StateFilter: &clients.SearchOrdersStateFilter{
					States: []string{"OPEN"},
				},
				SourceFilter: &clients.SearchOrdersSourceFilter{
					SourceNames: []string{s.cfg.SourceName},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}

	result := make([]bookings.Booking, len(orders))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(customerLookupLimit)
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			result[i] = s.bookingFromOrder(ctx, order)
			return nil
		})
	}
	// reconstruction never returns an error, only degrades
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
