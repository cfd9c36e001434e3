package user

import (
	"strings"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Pagination bounds for ListUsers.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListUsersInput holds parameters for the admin user listing.
type ListUsersInput struct {
	Role     *string
	IsActive *bool
	Limit    int
	Offset   int
}

// Validate validates the list input.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError

	if i.Role != nil && !domain.Role(*i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of user, analyst, admin"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	} else if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be at most 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListUsersInput) filter() domain.UserFilter {
	f := domain.UserFilter{IsActive: i.IsActive, Limit: i.Limit, Offset: i.Offset}
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if i.Role != nil {
		r := domain.Role(*i.Role)
		f.Role = &r
	}
	return f
}

// BootstrapAdminInput describes the admin account created on first deploy.
type BootstrapAdminInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the bootstrap input.
func (i BootstrapAdminInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "admin.email", Message: "required"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "admin.username", Message: "required"})
	}
	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "admin.password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
