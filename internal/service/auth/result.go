package auth

import "github.com/heartmarshall/tripnarrator/internal/domain"

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    int    // access token lifetime in seconds
	User         *domain.User
}
