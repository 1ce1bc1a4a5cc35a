package service

import (
	"context"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"github.com/dom/ep-app-api/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SeizureService struct {
	seizureRepo repository.SeizureRepository
	vocabRepo   repository.VocabularyRepository
	now         func() time.Time
}

func NewSeizureService(seizureRepo repository.SeizureRepository, vocabRepo repository.VocabularyRepository) *SeizureService {
	return &SeizureService{
		seizureRepo: seizureRepo,
		vocabRepo:   vocabRepo,
		now:         time.Now,
	}
}

// CreateSeizureInput holds a new seizure record. Date defaults to the time
// of creation and Length to zero.
type CreateSeizureInput struct {
	Date        *time.Time            `json:"date"`
	Length      *domain.SeizureLength `json:"length"`
	SeizureType string                `json:"seizureType" validate:"required"`
	Trigger     string                `json:"trigger"`
	Comment     string                `json:"comment"`
}

// UpdateSeizureInput holds a partial update; nil fields keep their value.
type UpdateSeizureInput struct {
	Date        *time.Time            `json:"date"`
	Length      *domain.SeizureLength `json:"length"`
	SeizureType *string               `json:"seizureType"`
	Trigger     *string               `json:"trigger"`
	Comment     *string               `json:"comment"`
}

func (s *SeizureService) Create(ctx context.Context, userID uuid.UUID, input CreateSeizureInput) (*domain.Seizure, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if _, err := lookupSeizureType(ctx, s.vocabRepo, input.SeizureType); err != nil {
		return nil, err
	}

	seizure := &domain.Seizure{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        s.now().UTC(),
		SeizureType: input.SeizureType,
		Trigger:     input.Trigger,
		Comment:     input.Comment,
	}
	if input.Date != nil {
		seizure.Date = input.Date.UTC()
	}
	var length domain.SeizureLength
	if input.Length != nil {
		length = *input.Length
	}
	seizure.Length = datatypes.NewJSONType(length)

	if err := s.seizureRepo.Create(ctx, seizure); err != nil {
		return nil, err
	}
	return seizure, nil
}

func (s *SeizureService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Seizure, error) {
	return s.seizureRepo.GetByUserID(ctx, userID)
}

func (s *SeizureService) Update(ctx context.Context, userID, id uuid.UUID, input UpdateSeizureInput) (*domain.Seizure, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	seizure, err := s.seizureRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.SeizureType != nil {
		if _, err := lookupSeizureType(ctx, s.vocabRepo, *input.SeizureType); err != nil {
			return nil, err
		}
		seizure.SeizureType = *input.SeizureType
	}
	if input.Date != nil {
		seizure.Date = input.Date.UTC()
	}
	if input.Length != nil {
		seizure.Length = datatypes.NewJSONType(*input.Length)
	}
	if input.Trigger != nil {
		seizure.Trigger = *input.Trigger
	}
	if input.Comment != nil {
		seizure.Comment = *input.Comment
	}

	if err := s.seizureRepo.Update(ctx, seizure); err != nil {
		return nil, err
	}
	return seizure, nil
}

func (s *SeizureService) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Seizure, error) {
	return s.seizureRepo.Delete(ctx, id, userID)
}
