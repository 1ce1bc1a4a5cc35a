package repository

import (
	"context"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
)

// Implementations return domain.ErrNotFound for missing rows and a
// *domain.ValidationError for unique constraint violations.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByAccessToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// SeizureRepository operations that take a userID only touch rows owned by
// that user.
type SeizureRepository interface {
	Create(ctx context.Context, seizure *domain.Seizure) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Seizure, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Seizure, error)
	Update(ctx context.Context, seizure *domain.Seizure) error
	Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Seizure, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error)
}

type VocabularyRepository interface {
	GetSeizureTypes(ctx context.Context) ([]*domain.SeizureType, error)
	GetContactTypes(ctx context.Context) ([]*domain.ContactType, error)
	GetSeizureType(ctx context.Context, name string) (*domain.SeizureType, error)
	GetContactType(ctx context.Context, name string) (*domain.ContactType, error)
	// UpsertAll inserts or refreshes every entry without removing others.
	UpsertAll(ctx context.Context, vocab domain.Vocabulary) error
	// Replace wipes both tables and loads vocab atomically.
	Replace(ctx context.Context, vocab domain.Vocabulary) error
}

type Repositories struct {
	User       UserRepository
	Seizure    SeizureRepository
	Contact    ContactRepository
	Vocabulary VocabularyRepository
}
