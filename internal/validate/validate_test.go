package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-contacts-app/internal/validate"
)

func TestContactForm_Valid(t *testing.T) {
	cases := []struct {
		name, phone, email string
	}{
		{"Alice Johnson", "+61412345678", "alice.johnson@example.com"},
		{"Bob Williams", "+64219876543", "bob.williams@company.net"},
		{"Charlie Brown", "+61298765432", "charlie@domain.org"},
		{" Padded Name ", " +61412345000 ", " padded@example.com "},
	}
	for _, tc := range cases {
		assert.Nil(t, validate.ContactForm(tc.name, tc.phone, tc.email), "%s should pass", tc.name)
	}
}

func TestContactForm_RejectsPhoneWithoutPlus(t *testing.T) {
	verr := validate.ContactForm("Alice", "12345", "alice@example.com")
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "phone_number")
	assert.Contains(t, verr.Fields["phone_number"][0], "E164")
}

func TestContactForm_RejectsValidE164OutsideAUNZ(t *testing.T) {
	verr := validate.ContactForm("Alice", "+1212345678", "alice@example.com")
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "phone_number")
	assert.Contains(t, verr.Fields["phone_number"][0], "+61")
}

func TestContactForm_RejectsBadEmail(t *testing.T) {
	verr := validate.ContactForm("Alice", "+61412345678", "not-an-email")
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "email")
	assert.Equal(t, "Invalid email address.", verr.Fields["email"][0])
}

func TestContactForm_RequiredFields(t *testing.T) {
	verr := validate.ContactForm("", "", "")
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "phone_number")
	assert.Contains(t, verr.Fields, "email")
}

func TestContactForm_LengthLimits(t *testing.T) {
	long := strings.Repeat("a", 256)

	verr := validate.ContactForm(long, "+61412345678", "alice@example.com")
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")

	verr = validate.ContactForm("Alice", "+61412345678", long+"@example.com")
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestContactForm_CollectsAllFieldErrors(t *testing.T) {
	verr := validate.ContactForm("", "12345", "not-an-email")
	require.NotNil(t, verr)
	assert.Len(t, verr.Fields, 3)
}
