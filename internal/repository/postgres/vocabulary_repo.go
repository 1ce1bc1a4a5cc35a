package postgres

import (
	"context"

	"github.com/dom/ep-app-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vocabularyRepository struct {
	db *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *vocabularyRepository {
	return &vocabularyRepository{db: db}
}

func (r *vocabularyRepository) GetSeizureTypes(ctx context.Context) ([]*domain.SeizureType, error) {
	types := []*domain.SeizureType{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, translateError(err)
	}
	return types, nil
}

func (r *vocabularyRepository) GetContactTypes(ctx context.Context) ([]*domain.ContactType, error) {
	types := []*domain.ContactType{}
	if err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&types).Error; err != nil {
		return nil, translateError(err)
	}
	return types, nil
}

func (r *vocabularyRepository) GetSeizureType(ctx context.Context, name string) (*domain.SeizureType, error) {
	var st domain.SeizureType
	if err := r.db.WithContext(ctx).First(&st, "name = ?", name).Error; err != nil {
		return nil, translateError(err)
	}
	return &st, nil
}

func (r *vocabularyRepository) GetContactType(ctx context.Context, name string) (*domain.ContactType, error) {
	var ct domain.ContactType
	if err := r.db.WithContext(ctx).First(&ct, "name = ?", name).Error; err != nil {
		return nil, translateError(err)
	}
	return &ct, nil
}

func (r *vocabularyRepository) UpsertAll(ctx context.Context, vocab domain.Vocabulary) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertVocabulary(tx, vocab)
	}))
}

func (r *vocabularyRepository) Replace(ctx context.Context, vocab domain.Vocabulary) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.SeizureType{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.ContactType{}).Error; err != nil {
			return err
		}
		return upsertVocabulary(tx, vocab)
	}))
}

func upsertVocabulary(tx *gorm.DB, vocab domain.Vocabulary) error {
	onName := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}
	if len(vocab.SeizureTypes) > 0 {
		if err := tx.Clauses(onName).Create(&vocab.SeizureTypes).Error; err != nil {
			return err
		}
	}
	if len(vocab.ContactTypes) > 0 {
		if err := tx.Clauses(onName).Create(&vocab.ContactTypes).Error; err != nil {
			return err
		}
	}
	return nil
}
