package account

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/classline/backend/internal/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// Validate checks the input fields. Email is expected to be normalized
// before validation.
func (in RegisterInput) Validate() error {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(in.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return fmt.Errorf("%w: last name is required", domain.ErrValidation)
	}
	if !in.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, string(in.Role))
	}
	return nil
}
