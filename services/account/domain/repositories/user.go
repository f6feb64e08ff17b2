package repositories

import (
	"context"

	"github.com/ghuser/wardrobe/services/account/domain/models"
)

// UserRepository is the persistence interface for accounts.
type UserRepository interface {
	// Save persists a new user. Returns domain.ErrEmailTaken when the
	// email is already registered.
	Save(ctx context.Context, user *models.User) error

	// GetByEmail loads a user by email. Returns domain.ErrInvalidCredentials
	// when no account matches, so callers cannot probe for registered emails.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
