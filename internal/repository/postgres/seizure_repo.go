package postgres

import (
	"context"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seizureRepository struct {
	db *gorm.DB
}

func NewSeizureRepository(db *gorm.DB) *seizureRepository {
	return &seizureRepository{db: db}
}

func (r *seizureRepository) Create(ctx context.Context, seizure *domain.Seizure) error {
	return translateError(r.db.WithContext(ctx).Create(seizure).Error)
}

func (r *seizureRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Seizure, error) {
	var seizure domain.Seizure
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&seizure).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &seizure, nil
}

func (r *seizureRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Seizure, error) {
	seizures := []*domain.Seizure{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&seizures).Error
	if err != nil {
		return nil, translateError(err)
	}
	return seizures, nil
}

func (r *seizureRepository) Update(ctx context.Context, seizure *domain.Seizure) error {
	result := r.db.WithContext(ctx).
		Model(seizure).
		Where("user_id = ?", seizure.UserID).
		Select("date", "length", "seizure_type", "trigger", "comment", "updated_at").
		Updates(seizure)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *seizureRepository) Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Seizure, error) {
	var seizure domain.Seizure
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&seizure)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &seizure, nil
}
