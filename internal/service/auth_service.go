package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"github.com/dom/ep-app-api/internal/validation"
	"github.com/google/uuid"
)

type AuthService struct {
	userRepo   repository.UserRepository
	hasher     *PasswordHasher
	issueToken TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, hasher *PasswordHasher, issueToken TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		issueToken: issueToken,
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=5,max=72"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.NewValidationError(domain.FieldError{Field: "email", Rule: domain.RuleUnique})
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := s.issueToken()
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		AccessToken:  token,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: user.AccessToken}, nil
}

// Login returns the token issued at registration. An unknown email and a
// wrong password both yield domain.ErrAuthFailed.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		return nil, domain.ErrAuthFailed
	}

	return &AuthResult{User: user, AccessToken: user.AccessToken}, nil
}

// Authenticate resolves an access token to its user. Empty and unknown
// tokens are both domain.ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
