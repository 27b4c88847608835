package domain

import "time"

// User represents a member account of the association platform.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsAdmin      bool   `json:"isAdmin"` // Platform admin flag, supersedes role checks everywhere
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete

	// External identity provider fields (Google sign-in)
	AuthProvider   string `json:"-"`
	ProviderUserID string `json:"-"`

	// Refresh token fields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
