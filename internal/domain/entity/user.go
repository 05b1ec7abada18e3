package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash and must never cross the server boundary.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	AvatarURL    *string
	Bio          *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
