package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/puresoul/puresoul-go/internal/crypto"
	"github.com/puresoul/puresoul-go/internal/model"
	"github.com/puresoul/puresoul-go/internal/repository"
	"github.com/puresoul/puresoul-go/internal/validation"
)

var (
	// ErrValidation wraps credential format violations; the wrapped message
	// is safe to show to the caller.
	ErrValidation = errors.New("validation failed")
	ErrUserExists = errors.New("user with this email or username already exists")
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password, so a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// StartingCredits is the balance granted to every new account.
const StartingCredits = 12

// AuthService handles registration, login and session tokens.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account with the starting credit balance.
// Email and username are stored lowercased so uniqueness is case-insensitive.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if violations := validation.ValidateUsername(username); len(violations) > 0 {
		return model.RegisterResponse{}, fmt.Errorf("%w: %s", ErrValidation, strings.Join(violations, " "))
	}
	if !validation.ValidateEmail(email) {
		return model.RegisterResponse{}, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if violations := validation.ValidatePassword(req.Password); len(violations) > 0 {
		return model.RegisterResponse{}, fmt.Errorf("%w: %s", ErrValidation, strings.Join(violations, " "))
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Credits:      StartingCredits,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return model.RegisterResponse{}, ErrUserExists
		}
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message: "Account created successfully! Please login.",
		Credits: user.Credits,
	}, nil
}

// Login authenticates by email or username and issues a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))

	user, err := s.store.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token:    token,
		Username: user.Username,
		Credits:  user.Credits,
		User:     user.ToResponse(),
	}, nil
}
