package services

import (
	"context"
	"errors"
	"testing"

	accountdomain "github.com/ghuser/wardrobe/services/account/domain"
	"github.com/ghuser/wardrobe/services/account/domain/models"
)

// fakeUserRepo is an in-memory repositories.UserRepository keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return accountdomain.ErrEmailTaken
	}
	cp := *user
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, accountdomain.ErrInvalidCredentials
	}
	cp := *user
	return &cp, nil
}

func TestAccountService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo)

	user, err := svc.Register(context.Background(), "ada@example.com", "Ada", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "hunter2hunter2" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "ada@example.com", "Ada Again", "hunter2hunter2")
		if !errors.Is(err, accountdomain.ErrEmailTaken) {
			t.Errorf("err = %v, want ErrEmailTaken", err)
		}
	})
}

func TestAccountService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo)
	if _, err := svc.Register(context.Background(), "ada@example.com", "Ada", "hunter2hunter2"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "ada@example.com", "hunter2hunter2")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if user.Email != "ada@example.com" {
			t.Errorf("email = %q", user.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ada@example.com", "wrong-password")
		if !errors.Is(err, accountdomain.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2")
		if !errors.Is(err, accountdomain.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}
