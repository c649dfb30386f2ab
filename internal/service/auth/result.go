package auth

import "github.com/heartmarshall/bugtracker/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, not the hash
	User         *domain.User
}
