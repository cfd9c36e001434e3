package auth

import (
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Credential limits.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MinPasswordLen = 8
	MaxPasswordLen = 100
	MaxEmailLen    = 254
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input. Every field is checked so the
// caller sees all problems at once.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch n := utf8.RuneCountInString(i.Username); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case n < MinUsernameLen || n > MaxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3 to 50 characters"})
	case !usernamePattern.MatchString(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "may contain only letters, digits and underscores"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > MaxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if addr, err := mail.ParseAddress(i.Email); err != nil || addr.Address != i.Email {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	errs = append(errs, validatePassword(i.Password)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login. Login is either an
// email address or a username.
type LoginInput struct {
	Login    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Login == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	} else if len(i.Login) > MaxEmailLen {
		errs = append(errs, domain.FieldError{Field: "login", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > MaxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePassword(password string) []domain.FieldError {
	switch n := utf8.RuneCountInString(password); {
	case n == 0:
		return []domain.FieldError{{Field: "password", Message: "required"}}
	case n < MinPasswordLen:
		return []domain.FieldError{{Field: "password", Message: "must be at least 8 characters"}}
	case n > MaxPasswordLen:
		return []domain.FieldError{{Field: "password", Message: "must be at most 100 characters"}}
	}
	return nil
}
