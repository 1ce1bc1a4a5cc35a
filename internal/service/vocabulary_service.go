package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
)

type VocabularyService struct {
	vocabRepo repository.VocabularyRepository
}

func NewVocabularyService(vocabRepo repository.VocabularyRepository) *VocabularyService {
	return &VocabularyService{vocabRepo: vocabRepo}
}

func (s *VocabularyService) SeizureTypes(ctx context.Context) ([]*domain.SeizureType, error) {
	return s.vocabRepo.GetSeizureTypes(ctx)
}

func (s *VocabularyService) ContactTypes(ctx context.Context) ([]*domain.ContactType, error) {
	return s.vocabRepo.GetContactTypes(ctx)
}

// Seed loads vocab into the reference tables. With reset the tables are
// wiped first, so entries missing from vocab disappear.
func (s *VocabularyService) Seed(ctx context.Context, vocab domain.Vocabulary, reset bool) error {
	if err := vocab.Validate(); err != nil {
		return fmt.Errorf("invalid vocabulary: %w", err)
	}
	if reset {
		return s.vocabRepo.Replace(ctx, vocab)
	}
	return s.vocabRepo.UpsertAll(ctx, vocab)
}

func lookupSeizureType(ctx context.Context, repo repository.VocabularyRepository, name string) (*domain.SeizureType, error) {
	st, err := repo.GetSeizureType(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError(domain.FieldError{Field: "seizureType", Rule: domain.RuleVocabulary, Param: name})
	}
	return st, err
}

func lookupContactType(ctx context.Context, repo repository.VocabularyRepository, name string) (*domain.ContactType, error) {
	ct, err := repo.GetContactType(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError(domain.FieldError{Field: "contactType", Rule: domain.RuleVocabulary, Param: name})
	}
	return ct, err
}
