package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dom/ep-app-api/internal/domain"
)

type VocabularyRepository struct {
	mu           sync.RWMutex
	seizureTypes map[string]domain.SeizureType
	contactTypes map[string]domain.ContactType
}

func NewVocabularyRepository() *VocabularyRepository {
	return &VocabularyRepository{
		seizureTypes: make(map[string]domain.SeizureType),
		contactTypes: make(map[string]domain.ContactType),
	}
}

func (r *VocabularyRepository) GetSeizureTypes(ctx context.Context) ([]*domain.SeizureType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]*domain.SeizureType, 0, len(r.seizureTypes))
	for _, st := range r.seizureTypes {
		entry := st
		types = append(types, &entry)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}

func (r *VocabularyRepository) GetContactTypes(ctx context.Context) ([]*domain.ContactType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]*domain.ContactType, 0, len(r.contactTypes))
	for _, ct := range r.contactTypes {
		entry := ct
		types = append(types, &entry)
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Category != types[j].Category {
			return types[i].Category < types[j].Category
		}
		return types[i].Name < types[j].Name
	})
	return types, nil
}

func (r *VocabularyRepository) GetSeizureType(ctx context.Context, name string) (*domain.SeizureType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.seizureTypes[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &st, nil
}

func (r *VocabularyRepository) GetContactType(ctx context.Context, name string) (*domain.ContactType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ct, ok := r.contactTypes[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ct, nil
}

func (r *VocabularyRepository) UpsertAll(ctx context.Context, vocab domain.Vocabulary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.load(vocab)
	return nil
}

func (r *VocabularyRepository) Replace(ctx context.Context, vocab domain.Vocabulary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seizureTypes = make(map[string]domain.SeizureType, len(vocab.SeizureTypes))
	r.contactTypes = make(map[string]domain.ContactType, len(vocab.ContactTypes))
	r.load(vocab)
	return nil
}

func (r *VocabularyRepository) load(vocab domain.Vocabulary) {
	for _, st := range vocab.SeizureTypes {
		r.seizureTypes[st.Name] = st
	}
	for _, ct := range vocab.ContactTypes {
		r.contactTypes[ct.Name] = ct
	}
}
