// Package auth verifies admin credentials, issues bearer tokens and resolves
// them back to accounts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jacsonsite/models"
	"jacsonsite/store"
)

var (
	// ErrInvalidCredentials is returned for an unknown user and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoToken            = errors.New("no bearer token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("token user no longer exists")
	ErrOldPassword        = errors.New("old password is incorrect")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// Session is the result of a successful login.
type Session struct {
	User      models.User
	Token     string
	ExpiresAt time.Time
}

type Service struct {
	users  store.Users
	tokens *Tokens
	dummy  func() (string, error)
}

func NewService(users store.Users, tokens *Tokens) *Service {
	return &Service{users: users, tokens: tokens, dummy: dummyHash}
}

func (s *Service) Tokens() *Tokens { return s.tokens }

// CreateUser stores a new account with a bcrypt hash of password.
func (s *Service) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return Session{}, err
	}

	// Timing attack mitigation: always check a password
	targetHash := user.PasswordHash
	if err != nil {
		var dummyErr error
		if targetHash, dummyErr = s.dummy(); dummyErr != nil {
			return Session{}, dummyErr
		}
	}
	match := CheckPasswordHash(password, targetHash)
	if err != nil || !match {
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Token: token, ExpiresAt: exp}, nil
}

// ChangePassword re-verifies oldPassword before storing newPassword.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !CheckPasswordHash(oldPassword, user.PasswordHash) {
		return ErrOldPassword
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.users.SetPasswordHash(ctx, userID, hash)
}

// Authenticate resolves an Authorization header value to a live account.
func (s *Service) Authenticate(ctx context.Context, header string) (models.User, error) {
	token, err := bearerToken(header)
	if err != nil {
		return models.User{}, ErrNoToken
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.users.UserByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errNoBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errNoBearer
	}
	return token, nil
}

type contextKey struct{}

func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// UserFromContext returns the account attached by the access gate.
func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(contextKey{}).(models.User)
	return u, ok
}
