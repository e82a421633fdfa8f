package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer mints a session token bound to a user id and phone.
type TokenIssuer interface {
	Issue(userID, phone string) (string, error)
}

// Service implements registration and login over a credential store.
type Service struct {
	repo   Repository
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService creates a new identity service.
func NewService(repo Repository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a new identity record and returns it with a session token.
// If the phone number is already registered it returns the existing identity
// alongside ErrAlreadyExists and mints no token; the store is not mutated on
// that path.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	if in.Password == "" {
		return Session{}, fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	existing, err := s.repo.FindByPhone(ctx, in.Phone)
	if err == nil {
		return Session{User: existing}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return Session{}, err
	}

	firstName, lastName := SplitFullName(in.FullName)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, err
	}

	user := User{
		ID:           uuid.New().String(),
		Phone:        in.Phone,
		FullName:     in.FullName,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		DateOfBirth:  in.DateOfBirth,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// Lost a race with a concurrent registration for the same phone.
			if existing, ferr := s.repo.FindByPhone(ctx, in.Phone); ferr == nil {
				return Session{User: existing}, ErrAlreadyExists
			}
			return Session{}, ErrAlreadyExists
		}
		return Session{}, err
	}

	tok, err := s.tokens.Issue(user.ID, user.Phone)
	if err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: tok}, nil
}

// Login verifies a phone/password pair and returns the identity with a fresh
// session token. Unknown phone and wrong password both fail with
// ErrInvalidCredentials. Rows missing the first/last name split get it derived
// from the full name and written back; a failed write-back is logged and does
// not fail the login.
func (s *Service) Login(ctx context.Context, phone, password string) (Session, error) {
	user, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	if user.FirstName == "" && user.FullName != "" {
		user.FirstName, user.LastName = SplitFullName(user.FullName)
		if err := s.repo.UpdateNames(ctx, user.ID, user.FirstName, user.LastName); err != nil {
			s.logger.Warn("name back-fill failed", "user_id", user.ID, "error", err)
		}
	}

	tok, err := s.tokens.Issue(user.ID, user.Phone)
	if err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: tok}, nil
}
