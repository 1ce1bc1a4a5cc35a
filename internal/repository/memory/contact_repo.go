package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
)

type ContactRepository struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]domain.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{contacts: make(map[uuid.UUID]domain.Contact)}
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if _, exists := r.contacts[contact.ID]; exists {
		return domain.NewValidationError(domain.FieldError{Field: "id", Rule: domain.RuleUnique})
	}
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	r.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &contact, nil
}

func (r *ContactRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := []*domain.Contact{}
	for _, c := range r.contacts {
		if c.UserID == userID {
			contact := c
			contacts = append(contacts, &contact)
		}
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].UpdatedAt.After(contacts[j].UpdatedAt)
	})
	return contacts, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.contacts[contact.ID]
	if !ok || stored.UserID != contact.UserID {
		return domain.ErrNotFound
	}
	contact.CreatedAt = stored.CreatedAt
	contact.UpdatedAt = time.Now()
	r.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID {
		return nil, domain.ErrNotFound
	}
	delete(r.contacts, id)
	return &contact, nil
}
