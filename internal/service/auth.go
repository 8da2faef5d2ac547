package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/retail_shop/internal/hash"
	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
)

type AuthService struct {
	Repo *repo.GormRepo
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (int, error) {
	available, err := s.Repo.EmailAvailable(ctx, email)
	if err != nil {
		return 0, err
	}
	if !available {
		return 0, fmt.Errorf("email already registered: %w", ErrValidation)
	}

	pwdHash, err := hash.HashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.Repo.RegisterCustomer(ctx, name, email, pwdHash)
}

// Login returns nil when the uid is unknown or the password does not match.
func (s *AuthService) Login(ctx context.Context, uid int, password string) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil || !hash.CheckPassword(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}

func (s *AuthService) StartSession(ctx context.Context, cid int, startTime time.Time) (int, error) {
	return s.Repo.StartSession(ctx, cid, startTime)
}

func (s *AuthService) EndSession(ctx context.Context, cid, sessionNo int, endTime time.Time) error {
	return s.Repo.EndSession(ctx, cid, sessionNo, endTime)
}
