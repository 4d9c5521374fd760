//go:build component

package tests

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"

	"bookings/internal/app"
	"bookings/internal/config"
	"bookings/internal/domain/bookings"
	"bookings/internal/infrastructure/clients"
	"bookings/internal/observability"
)

// squareStub is an in-memory stand-in for the Square API. Orders created
// through it become visible to subsequent searches, which lets a test walk
// the whole book-then-list path against one process.
type squareStub struct {
	mu        sync.Mutex
	orders    []clients.Order
	customers map[string]clients.Customer

	srv *httptest.Server
}

func newSquareStub() *squareStub {
	stub := &squareStub{
		customers: map[string]clients.Customer{},
	}
	stub.srv = httptest.NewServer(http.HandlerFunc(stub.handle))
	return stub
}

func (s *squareStub) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v2/online-checkout/payment-links":
		var req clients.CreatePaymentLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.orders = append(s.orders, orderFromNew(req.Order))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"payment_link": map[string]any{
				"id":       uuid.NewString(),
				"long_url": "https://square.test/pay/" + uuid.NewString(),
			},
		})

	case r.Method == http.MethodPost && r.URL.Path == "/v2/orders":
		var req clients.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		order := orderFromNew(req.Order)
		s.orders = append(s.orders, order)
		_ = json.NewEncoder(w).Encode(map[string]any{"order": order})

	case r.Method == http.MethodPost && r.URL.Path == "/v2/orders/search":
		_ = json.NewEncoder(w).Encode(map[string]any{"orders": s.orders})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v2/customers/"):
		id := strings.TrimPrefix(r.URL.Path, "/v2/customers/")
		customer, ok := s.customers[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": []map[string]string{{"code": "NOT_FOUND"}}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"customer": customer})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func orderFromNew(in clients.NewOrder) clients.Order {
	order := clients.Order{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		LocationID: in.LocationID,
	}
	for _, li := range in.LineItems {
		order.LineItems = append(order.LineItems, clients.OrderLineItem{
			Quantity:        li.Quantity,
			CatalogObjectID: li.CatalogObjectID,
			CatalogVersion:  li.CatalogVersion,
			Metadata:        li.Metadata,
		})
	}
	return order
}

func (s *squareStub) addCustomer(c clients.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *squareStub) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *squareStub) close() {
	s.srv.Close()
}

type sentSummary struct {
	EventName string
	Contact   bookings.BookingContact
	Tickets   []bookings.Ticket
}

// recordingEmailSender captures summaries instead of talking to SMTP.
type recordingEmailSender struct {
	mu   sync.Mutex
	sent []sentSummary
}

func (r *recordingEmailSender) SendBookingSummary(_ context.Context, eventName string, contact bookings.BookingContact, tickets []bookings.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentSummary{EventName: eventName, Contact: contact, Tickets: tickets})
	return nil
}

func (r *recordingEmailSender) all() []sentSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentSummary(nil), r.sent...)
}

type ComponentTestSuite struct {
	suite.Suite

	ctx    context.Context
	cancel context.CancelFunc

	redisContainer testcontainers.Container
	redisClient    *redis.Client

	square      *squareStub
	emailSender *recordingEmailSender

	baseURL    string
	httpClient *http.Client

	appDone chan struct{}
}

func (s *ComponentTestSuite) SetupSuite() {
	observability.Init(logrus.WarnLevel)
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	var redisAddr string
	s.redisContainer, redisAddr = startRedisContainer(s.ctx, s.T())
	s.redisClient = redis.NewClient(&redis.Options{Addr: redisAddr})

	s.square = newSquareStub()
	s.emailSender = &recordingEmailSender{}

	addr := freeAddr(s.T())
	s.baseURL = "http://" + addr

	cfg := &config.Config{
		HTTPAddr:             addr,
		SquareEndpoint:       s.square.srv.URL,
		SquareAPIKey:         "test-key",
		SquareLocationID:     "LOC1",
		SquareItemID:         "VF54IAUH3FRNQMNE7T43ZXUB",
		SquareCatalogVersion: 1700477397626,
		SquareSourceName:     "StukeleyHappenings",
		RedisAddr:            redisAddr,
	}

	event := bookings.Event{
		ID:      "xmas2023",
		Name:    "Little Stukeley Christmas Dinner",
		Tagline: "Three courses and crackers",
		TicketTypes: bookings.TicketTypes{
			{Name: "Adult", Price: decimal.New(1500, -2)},
			{Name: "Child", Price: decimal.New(800, -2)},
		},
	}

	squareClient := clients.NewSquareClient(cfg.SquareEndpoint, cfg.SquareAPIKey)
	application, err := app.NewApp(
		cfg,
		event,
		watermill.NopLogger{},
		squareClient,
		squareClient,
		s.emailSender,
		s.redisClient,
	)
	require.NoError(s.T(), err)

	s.appDone = make(chan struct{})
	go func() {
		defer close(s.appDone)
		_ = application.Run(s.ctx)
	}()

	s.waitForHealth()
}

func (s *ComponentTestSuite) TearDownSuite() {
	s.cancel()
	select {
	case <-s.appDone:
	case <-time.After(10 * time.Second):
		s.T().Log("app did not shut down in time")
	}

	s.square.close()
	_ = s.redisClient.Close()
	if s.redisContainer != nil {
		_ = s.redisContainer.Terminate(context.Background())
	}
}

func (s *ComponentTestSuite) waitForHealth() {
	require.Eventually(s.T(), func() bool {
		resp, err := s.httpClient.Get(s.baseURL + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 15*time.Second, 100*time.Millisecond, "service never became healthy")
}

func freeAddr(t require.TestingT) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().String()
}

