package bookings

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhoneNumber = errors.New("invalid phone number")

var contactValidator = newContactValidator()

func newContactValidator() *validator.Validate {
	v := validator.New()
	// registration only fails for an empty tag name
	_ = v.RegisterValidation("gb_phone", func(fl validator.FieldLevel) bool {
		num, err := phonenumbers.Parse(fl.Field().String(), "GB")
		if err != nil {
			return false
		}
		return phonenumbers.IsValidNumber(num)
	})
	return v
}

// ValidationError carries per-field messages for display next to the form
// controls. It is surfaced to the submitter before any provider call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate is pure: it reports pass/fail plus field messages and never
// mutates the contact.
func (c BookingContact) Validate() error {
	err := contactValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			fields["name"] = "name must be at least 3 characters"
		case "Email":
			fields["email"] = "not a valid email address"
		case "PhoneNo":
			fields["phone_no"] = "not a valid UK phone number"
		default:
			fields[fe.Field()] = fe.Tag()
		}
	}
	return &ValidationError{Fields: fields}
}
