package models

import (
	"time"

	"github.com/google/uuid"
)

// User is one registered account. PasswordHash holds a bcrypt hash; the
// plaintext password never leaves the account service.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser constructs a User with generated ID and current timestamp.
// The caller supplies an already-hashed password.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
