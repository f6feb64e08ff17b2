package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	accountdomain "github.com/ghuser/wardrobe/services/account/domain"
	"github.com/ghuser/wardrobe/services/account/domain/models"
	"github.com/ghuser/wardrobe/services/account/domain/repositories"
)

// AccountService handles registration and credential verification.
// Session issuance is the handlers' job; this service only deals in users
// and password hashes.
type AccountService struct {
	repo repositories.UserRepository
}

// NewAccountService returns an AccountService wired with the given repository.
func NewAccountService(repo repositories.UserRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register hashes the password and persists a new user.
func (s *AccountService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(email, name, string(hash))
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Login verifies the email/password pair. Unknown email and wrong password
// both yield ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountdomain.ErrInvalidCredentials) {
			return nil, accountdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, accountdomain.ErrInvalidCredentials
	}
	return user, nil
}
