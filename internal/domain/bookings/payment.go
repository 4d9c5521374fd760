package bookings

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentNotPaid PaymentStatus = "not_paid"
	PaymentCard    PaymentStatus = "card"
	PaymentCash    PaymentStatus = "cash"
)

// Payment records how a booking was settled. Amount is the sum of all
// tenders on the order; it is zero iff Status is PaymentNotPaid.
type Payment struct {
	Status PaymentStatus   `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

func NotPaid() Payment {
	return Payment{Status: PaymentNotPaid, Amount: decimal.Zero}
}

func CardPayment(amount decimal.Decimal) Payment {
	return Payment{Status: PaymentCard, Amount: amount}
}

func CashPayment(amount decimal.Decimal) Payment {
	return Payment{Status: PaymentCash, Amount: amount}
}
