package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookings/internal/observability"
)

// ProviderError is a non-2xx response from the provider. The raw body is
// carried through untouched: there is no structured parsing of provider
// error codes, the message is shown to the submitter as-is.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Body)
}

// SquareClient talks to the Square v2 API. The bearer token is attached to
// every outbound call; no retries happen at this layer.
type SquareClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewSquareClient(endpoint, apiKey string) *SquareClient {
	return &SquareClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

func (c *SquareClient) CreatePaymentLink(ctx context.Context, req CreatePaymentLinkRequest) (*PaymentLink, error) {
	var resp createPaymentLinkResponse
	err := c.do(ctx, http.MethodPost, "online-checkout/payment-links", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("error creating payment link: %w", err)
	}
	return &resp.PaymentLink, nil
}

func (c *SquareClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var resp createOrderResponse
	err := c.do(ctx, http.MethodPost, "orders", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}
	return &resp.Order, nil
}

func (c *SquareClient) SearchOrders(ctx context.Context, req SearchOrdersRequest) ([]Order, error) {
	var resp searchOrdersResponse
	err := c.do(ctx, http.MethodPost, "orders/search", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("error searching orders: %w", err)
	}
	return resp.Orders, nil
}

func (c *SquareClient) RetrieveCustomer(ctx context.Context, customerID string) (*Customer, error) {
	var resp retrieveCustomerResponse
	err := c.do(ctx, http.MethodGet, "customers/"+customerID, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("error retrieving customer %s: %w", customerID, err)
	}
	if resp.Customer == nil {
		return nil, fmt.Errorf("no customer in response for %s", customerID)
	}
	return resp.Customer, nil
}

func (c *SquareClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	base := c.endpoint
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	url := fmt.Sprintf("%s/v2/%s", base, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.FromContext(ctx).
			WithField("status", resp.StatusCode).
			WithField("path", path).
			Warn("provider call failed")

		return &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
