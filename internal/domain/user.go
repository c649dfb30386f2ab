package domain

import "time"

// User is a registered account.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Fullname     string    `json:"fullname"`
	IsAdmin      bool      `json:"isAdmin"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AsCreator returns the back-reference stored on bugs the user files.
func (u *User) AsCreator() *Creator {
	return &Creator{ID: u.ID, Fullname: u.Fullname}
}

// Role returns the role claim carried in access tokens.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}

// RefreshToken represents a hashed refresh token in the store.
type RefreshToken struct {
	ID        string     `json:"_id"`
	UserID    string     `json:"userId"`
	TokenHash string     `json:"tokenHash"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
