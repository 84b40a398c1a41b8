// Package validate holds the form-validation schema the interactive clients
// (web UI and contactctl) apply before any request reaches the API. The server
// itself only re-checks presence/shape/length; the AU/NZ phone restriction is
// a client rule.
package validate

import (
	"regexp"
	"strings"

	"go-contacts-app/internal/domain"
)

var (
	e164Re  = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ContactForm checks name/phone/email against the shared schema and returns a
// field-keyed ValidationError, or nil when everything passes.
func ContactForm(name, phone, email string) *domain.ValidationError {
	verr := domain.NewValidationError()

	name = strings.TrimSpace(name)
	if name == "" {
		verr.Add("name", "Name is required.")
	} else if len(name) > 255 {
		verr.Add("name", "Name cannot exceed 255 characters.")
	}

	phone = strings.TrimSpace(phone)
	switch {
	case phone == "":
		verr.Add("phone_number", "Phone number is required.")
	case !e164Re.MatchString(phone):
		verr.Add("phone_number", "Invalid E164 format (e.g., +61412345678).")
	case !strings.HasPrefix(phone, "+61") && !strings.HasPrefix(phone, "+64"):
		verr.Add("phone_number", "Must be an Australian (+61) or New Zealand (+64) number.")
	}

	email = strings.TrimSpace(email)
	switch {
	case email == "":
		verr.Add("email", "Email is required.")
	case !emailRe.MatchString(email):
		verr.Add("email", "Invalid email address.")
	case len(email) > 255:
		verr.Add("email", "Email cannot exceed 255 characters.")
	}

	if verr.Empty() {
		return nil
	}
	return verr
}
