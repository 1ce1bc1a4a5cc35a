package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, exists := r.users[user.ID]; exists {
		return domain.NewValidationError(domain.FieldError{Field: "id", Rule: domain.RuleUnique})
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.NewValidationError(domain.FieldError{Field: "email", Rule: domain.RuleUnique})
		}
		if existing.AccessToken == user.AccessToken {
			return domain.NewValidationError(domain.FieldError{Field: "accessToken", Rule: domain.RuleUnique})
		}
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByAccessToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	return r.find(func(u domain.User) bool { return u.AccessToken == token })
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FirstName = user.FirstName
	stored.Surname = user.Surname
	stored.BirthDate = user.BirthDate
	stored.PasswordHash = user.PasswordHash
	stored.UpdatedAt = time.Now()
	user.UpdatedAt = stored.UpdatedAt
	r.users[user.ID] = stored
	return nil
}

func (r *UserRepository) find(match func(domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if match(user) {
			found := user
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
