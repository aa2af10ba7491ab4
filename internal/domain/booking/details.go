package booking

import (
	"net/mail"
	"strings"

	"github.com/punitsirse123/TempCall/internal/httperr"
)

// Details is what a client fills in to request an appointment.
type Details struct {
	Name  string
	Email string
	Notes string
}

func (d Details) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return httperr.ErrBusiness("missing_name")
	}
	if !IsEmailSyntaxValid(d.Email) {
		return httperr.ErrBusiness("invalid_email")
	}
	return nil
}

// IsEmailSyntaxValid checks syntax only; booking never does network
// lookups on the client's address.
func IsEmailSyntaxValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
