// Package email renders a booking summary to inline-styled HTML and sends
// it to the operator over SMTP.
package email

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/vanng822/go-premailer/premailer"
	"gopkg.in/gomail.v2"

	"bookings/internal/domain/bookings"
	"bookings/internal/observability"
)

//go:embed booking.tmpl.html
var bookingTmpl string

//go:embed style.css
var stylesheet string

var summaryTemplate = template.Must(template.New("booking").Parse(bookingTmpl))

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type Sender struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSender(cfg Config) *Sender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	// plain connection with STARTTLS upgrade, not implicit TLS
	dialer.SSL = false

	return &Sender{
		cfg:    cfg,
		dialer: dialer,
	}
}

// SendBookingSummary renders the contact and ticket tables, inlines the
// stylesheet and sends the result. The subject carries a pluralized ticket
// count and the contact's name.
func (s *Sender) SendBookingSummary(ctx context.Context, eventName string, contact bookings.BookingContact, tickets []bookings.Ticket) error {
	observability.FromContext(ctx).
		WithField("contact", contact.Name).
		Info("emailing booking")

	html, err := renderSummary(contact, tickets)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", s.cfg.To)
	msg.SetHeader("Subject", Subject(eventName, contact.Name, len(tickets)))
	msg.SetBody("text/plain", "Switch to HTML view")
	msg.AddAlternative("text/html", html)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}
	return nil
}

// Subject formats the operator notification subject line.
func Subject(eventName, contactName string, ticketCount int) string {
	return fmt.Sprintf("%s: %s booked by %s", eventName, pluralize(ticketCount, "ticket"), contactName)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func renderSummary(contact bookings.BookingContact, tickets []bookings.Ticket) (string, error) {
	var buf bytes.Buffer
	err := summaryTemplate.Execute(&buf, struct {
		CSS     template.CSS
		Contact bookings.BookingContact
		Tickets []bookings.Ticket
	}{
		CSS:     template.CSS(stylesheet),
		Contact: contact,
		Tickets: tickets,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render booking summary: %w", err)
	}

	inliner, err := premailer.NewPremailerFromString(buf.String(), premailer.NewOptions())
	if err != nil {
		return "", fmt.Errorf("failed to prepare css inliner: %w", err)
	}
	styled, err := inliner.Transform()
	if err != nil {
		return "", fmt.Errorf("failed to inline css: %w", err)
	}
	return styled, nil
}
