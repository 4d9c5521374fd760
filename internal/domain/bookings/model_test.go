package bookings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() TicketTypes {
	return TicketTypes{
		{Name: "Adult", Price: decimal.New(1500, -2)},
		{Name: "Child", Price: decimal.New(750, -2)},
		{Name: "Adult", Price: decimal.New(9900, -2)},
	}
}

func TestTicketTypesFind(t *testing.T) {
	catalog := testCatalog()

	tt, ok := catalog.Find("Child")
	require.True(t, ok)
	assert.Equal(t, "Child", tt.Name)

	_, ok = catalog.Find("child")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = catalog.Find("Senior")
	assert.False(t, ok)
}

func TestTicketTypesFindFirstMatchWins(t *testing.T) {
	tt, ok := testCatalog().Find("Adult")
	require.True(t, ok)
	assert.True(t, tt.Price.Equal(decimal.New(1500, -2)), "duplicate names resolve to the first entry")
}

func TestTicketTypesStandard(t *testing.T) {
	tt, ok := testCatalog().Standard()
	require.True(t, ok)
	assert.Equal(t, "Adult", tt.Name)

	_, ok = TicketTypes{}.Standard()
	assert.False(t, ok)
}

func TestNewBookingContact(t *testing.T) {
	contact := NewBookingContact("Joe Bloggs", "joe@bloggs.com", "xmas2023")

	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "xmas2023", contact.EventID)
	assert.Empty(t, contact.PhoneNo)

	other := NewBookingContact("Joe Bloggs", "joe@bloggs.com", "xmas2023")
	assert.NotEqual(t, contact.ID, other.ID)
}

func TestPhoneNumber(t *testing.T) {
	contact := BookingContact{PhoneNo: "+447911123456"}
	num, err := contact.PhoneNumber()
	require.NoError(t, err)
	require.NotNil(t, num)

	contact.PhoneNo = "07911 123456"
	_, err = contact.PhoneNumber()
	assert.NoError(t, err, "national format parses with GB default region")

	contact.PhoneNo = "not a number"
	_, err = contact.PhoneNumber()
	assert.Error(t, err)

	contact.PhoneNo = "+44123"
	_, err = contact.PhoneNumber()
	assert.Error(t, err, "parseable but invalid numbers are rejected")
}

func TestPaymentConstructors(t *testing.T) {
	assert.Equal(t, PaymentNotPaid, NotPaid().Status)
	assert.True(t, NotPaid().Amount.IsZero())

	card := CardPayment(decimal.New(1500, -2))
	assert.Equal(t, PaymentCard, card.Status)
	assert.Equal(t, "15.00", card.Amount.StringFixed(2))

	cash := CashPayment(decimal.New(500, -2))
	assert.Equal(t, PaymentCash, cash.Status)
}
