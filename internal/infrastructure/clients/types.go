package clients

// Wire shapes for the Square orders/checkout API. Only the fields this
// service reads or writes are declared.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type NewLineItem struct {
	Quantity        string            `json:"quantity"`
	CatalogObjectID string            `json:"catalog_object_id"`
	CatalogVersion  int64             `json:"catalog_version"`
	Metadata        map[string]string `json:"metadata"`
}

type NewOrder struct {
	CustomerID string        `json:"customer_id,omitempty"`
	LocationID string        `json:"location_id"`
	LineItems  []NewLineItem `json:"line_items"`
}

type CheckoutOptions struct {
	AllowTipping          bool `json:"allow_tipping"`
	AskForShippingAddress bool `json:"ask_for_shipping_address"`
	EnableCoupon          bool `json:"enable_coupon"`
	EnableLoyalty         bool `json:"enable_loyalty"`
}

type PrePopulatedData struct {
	BuyerEmail       string `json:"buyer_email,omitempty"`
	BuyerPhoneNumber string `json:"buyer_phone_number,omitempty"`
}

type CreatePaymentLinkRequest struct {
	IdempotencyKey   string            `json:"idempotency_key"`
	Description      string            `json:"description"`
	Order            NewOrder          `json:"order"`
	CheckoutOptions  *CheckoutOptions  `json:"checkout_options,omitempty"`
	PrePopulatedData *PrePopulatedData `json:"pre_populated_data,omitempty"`
}

type PaymentLink struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	LongURL string `json:"long_url"`
}

type createPaymentLinkResponse struct {
	PaymentLink PaymentLink `json:"payment_link"`
}

type CreateOrderRequest struct {
	IdempotencyKey string   `json:"idempotency_key"`
	Order          NewOrder `json:"order"`
}

type createOrderResponse struct {
	Order Order `json:"order"`
}

type OrderLineItem struct {
	UID             string            `json:"uid,omitempty"`
	Quantity        string            `json:"quantity"`
	VariationName   string            `json:"variation_name"`
	CatalogObjectID string            `json:"catalog_object_id"`
	CatalogVersion  int64             `json:"catalog_version"`
	BasePriceMoney  *Money            `json:"base_price_money,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type Tender struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	AmountMoney *Money `json:"amount_money,omitempty"`
}

type Order struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id,omitempty"`
	LocationID string          `json:"location_id"`
	LineItems  []OrderLineItem `json:"line_items"`
	Tenders    []Tender        `json:"tenders,omitempty"`
}

type SearchOrdersStateFilter struct {
	States []string `json:"states"`
}

type SearchOrdersSourceFilter struct {
	SourceNames []string `json:"source_names"`
}

type SearchOrdersFilter struct {
	StateFilter  *SearchOrdersStateFilter  `json:"state_filter,omitempty"`
	SourceFilter *SearchOrdersSourceFilter `json:"source_filter,omitempty"`
}

type SearchOrdersQuery struct {
	Filter *SearchOrdersFilter `json:"filter,omitempty"`
}

type SearchOrdersRequest struct {
	LocationIDs []string           `json:"location_ids"`
	Query       *SearchOrdersQuery `json:"query,omitempty"`
}

type searchOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type Customer struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
}

type retrieveCustomerResponse struct {
	Customer *Customer `json:"customer"`
}
