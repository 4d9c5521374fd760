package draft

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookings/internal/domain/bookings"
)

var (
	ErrEmptyCatalog = errors.New("event has no ticket types")
	ErrNoTickets    = errors.New("a booking needs at least one ticket")
)

// Draft is the page-level controller for a new booking form. It owns the
// contact cell and the ticket collection, and keeps the aggregate views
// (ticket count, total price) in sync by subscribing to the collection,
// recomputing once per mutation.
type Draft struct {
	event   bookings.Event
	Contact *Store[bookings.BookingContact]
	Tickets *TrackedList[bookings.Ticket]

	count int
	total decimal.Decimal
}

// New seeds a draft the way the form first renders: an empty contact and a
// single ticket of the event's standard type.
func New(event bookings.Event) (*Draft, error) {
	standard, ok := event.TicketTypes.Standard()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, event.ID)
	}

	contact := bookings.NewBookingContact("", "", event.ID)
	d := &Draft{
		event:   event,
		Contact: NewStore(contact),
		Tickets: NewTrackedList[bookings.Ticket](),
	}
	d.Tickets.Subscribe(d.recompute)
	d.Tickets.Push(bookings.NewTicket(contact.ID, standard))
	return d, nil
}

// AddTicket appends a ticket of the standard type.
func (d *Draft) AddTicket() uuid.UUID {
	standard, _ := d.event.TicketTypes.Standard()
	return d.Tickets.Push(bookings.NewTicket(d.Contact.Get().ID, standard))
}

func (d *Draft) RemoveTicket(id uuid.UUID) {
	d.Tickets.Remove(id)
}

func (d *Draft) UpdateTicket(id uuid.UUID, mutate func(*bookings.Ticket)) {
	d.Tickets.Update(id, mutate)
}

// SetTicketType switches a ticket to the named catalog type, keeping
// first-match semantics on duplicate names. Unknown names are ignored.
func (d *Draft) SetTicketType(id uuid.UUID, name string) {
	tt, ok := d.event.TicketTypes.Find(name)
	if !ok {
		return
	}
	d.Tickets.Update(id, func(t *bookings.Ticket) {
		t.TicketType = tt
	})
}

func (d *Draft) TicketCount() int {
	return d.count
}

func (d *Draft) Total() decimal.Decimal {
	return d.total
}

// Assemble snapshots the contact and the ticket collection into an
// immutable NewBooking. Ticket order is the display order and every
// ticket's BookingID is stamped with the contact id. Submitting an empty
// collection is a business-rule violation, rejected here rather than in
// the collection type.
func (d *Draft) Assemble() (bookings.NewBooking, error) {
	if d.Tickets.Len() == 0 {
		return bookings.NewBooking{}, ErrNoTickets
	}

	contact := d.Contact.Get()
	entries := d.Tickets.Entries()
	tickets := make([]bookings.Ticket, 0, len(entries))
	for _, e := range entries {
		t := e.Value
		t.BookingID = contact.ID
		tickets = append(tickets, t)
	}

	return bookings.NewBooking{
		EventID: d.event.ID,
		Contact: contact,
		Tickets: tickets,
	}, nil
}

func (d *Draft) recompute() {
	count := 0
	total := decimal.Zero
	for _, e := range d.Tickets.Entries() {
		count++
		total = total.Add(e.Value.TicketType.Price)
	}
	d.count = count
	d.total = total
}
