package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/auth"
)

// ErrInvalidLogin is the single outward error for failed logins. An unknown
// email and a wrong password both map here so the response does not reveal
// which one it was.
var ErrInvalidLogin = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)

// Service handles registration, login and profile updates for users.
type Service struct {
	userRepo  domain.UserRepository
	passwords *auth.PasswordService
	tokens    *auth.TokenService
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository, passwords *auth.PasswordService, tokens *auth.TokenService) *Service {
	return &Service{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (domain.User, string, error) {
	hashed, err := s.passwords.Hash(password)
	if err != nil {
		return domain.User{}, "", err
	}

	u := domain.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", ErrInvalidLogin
		}
		return domain.User{}, "", err
	}

	if err := s.passwords.Verify(u.Password, password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.User{}, "", ErrInvalidLogin
		}
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, token, nil
}

func (s *Service) GetCurrent(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, username, email, password, bio, image *string) (domain.User, error) {
	patch := domain.UserUpdate{
		Username: username,
		Email:    email,
		Bio:      bio,
		Image:    image,
	}

	if password != nil {
		hashed, err := s.passwords.Hash(*password)
		if err != nil {
			return domain.User{}, err
		}
		patch.Password = &hashed
	}

	return s.userRepo.Update(ctx, id, patch)
}
