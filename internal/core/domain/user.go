package domain

import "time"

// UserRole is the access level of a shop account.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a registered customer or shop administrator.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
