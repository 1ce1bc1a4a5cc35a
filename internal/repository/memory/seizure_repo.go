package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
)

type SeizureRepository struct {
	mu       sync.RWMutex
	seizures map[uuid.UUID]domain.Seizure
}

func NewSeizureRepository() *SeizureRepository {
	return &SeizureRepository{seizures: make(map[uuid.UUID]domain.Seizure)}
}

func (r *SeizureRepository) Create(ctx context.Context, seizure *domain.Seizure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seizure.ID == uuid.Nil {
		seizure.ID = uuid.New()
	}
	if _, exists := r.seizures[seizure.ID]; exists {
		return domain.NewValidationError(domain.FieldError{Field: "id", Rule: domain.RuleUnique})
	}
	now := time.Now()
	seizure.CreatedAt = now
	seizure.UpdatedAt = now
	r.seizures[seizure.ID] = *seizure
	return nil
}

func (r *SeizureRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Seizure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seizure, ok := r.seizures[id]
	if !ok || seizure.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &seizure, nil
}

func (r *SeizureRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Seizure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seizures := []*domain.Seizure{}
	for _, s := range r.seizures {
		if s.UserID == userID {
			seizure := s
			seizures = append(seizures, &seizure)
		}
	}
	sort.Slice(seizures, func(i, j int) bool {
		if !seizures[i].Date.Equal(seizures[j].Date) {
			return seizures[i].Date.After(seizures[j].Date)
		}
		return seizures[i].CreatedAt.After(seizures[j].CreatedAt)
	})
	return seizures, nil
}

func (r *SeizureRepository) Update(ctx context.Context, seizure *domain.Seizure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.seizures[seizure.ID]
	if !ok || stored.UserID != seizure.UserID {
		return domain.ErrNotFound
	}
	seizure.CreatedAt = stored.CreatedAt
	seizure.UpdatedAt = time.Now()
	r.seizures[seizure.ID] = *seizure
	return nil
}

func (r *SeizureRepository) Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Seizure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seizure, ok := r.seizures[id]
	if !ok || seizure.UserID != userID {
		return nil, domain.ErrNotFound
	}
	delete(r.seizures, id)
	return &seizure, nil
}
