// Package services contains the application services of curio: credential
// handling, collection CRUD with derived counts, and item CRUD with the
// cascade rules. Services own all validation and invariants; repositories
// below them only move blobs.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/curio-app/curio/internal/common"
	"github.com/curio-app/curio/internal/cryptox"
	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/repositories/session"
	"github.com/curio-app/curio/internal/repositories/users"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService owns registration, login, logout, and the session state.
//
// Contract:
//   - Register: validate and append a new user; checks run in a fixed order
//     and the first failing check wins.
//   - Login: verify credentials; an unknown email and a wrong password are
//     indistinguishable to the caller. Success replaces any prior session.
//   - Logout: clear the session; idempotent.
//   - CurrentUserEmail: the logged-in email, or "" when nobody is.
type AuthService interface {
	Register(ctx context.Context, email, password, confirmPassword string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUserEmail(ctx context.Context) string
}

type authService struct {
	userRepo    users.Repository
	sessionRepo session.Repository
	log         logging.Logger
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(userRepo users.Repository, sessionRepo session.Repository, log logging.Logger) AuthService {
	return &authService{userRepo: userRepo, sessionRepo: sessionRepo, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *authService) Register(ctx context.Context, email, password, confirmPassword string) (*models.User, error) {
	email = normalizeEmail(email)

	if email == "" || password == "" || confirmPassword == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", common.ErrValidation)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters long", common.ErrValidation)
	}

	existing, err := a.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range existing {
		if u.Email == email {
			return nil, fmt.Errorf("%w: email already registered", common.ErrValidation)
		}
	}

	user := models.User{Email: email, PasswordHash: cryptox.HashPassword(password)}
	if err := a.userRepo.Replace(ctx, append(existing, user)); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	a.log.Info(ctx, "user registered", "email", email)
	return &user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = normalizeEmail(email)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	existing, err := a.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var user *models.User
	for i := range existing {
		if existing[i].Email == email {
			user = &existing[i]
			break
		}
	}
	if user == nil || !cryptox.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	s := models.Session{Email: user.Email}
	if err := a.sessionRepo.Set(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	a.log.Info(ctx, "user logged in", "email", email)
	return &s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.CurrentUserEmail(ctx) != ""
}

func (a *authService) CurrentUserEmail(ctx context.Context) string {
	s, err := a.sessionRepo.Get(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading session", "error", err)
		return ""
	}
	if s == nil {
		return ""
	}
	return s.Email
}
