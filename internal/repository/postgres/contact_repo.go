package postgres

import (
	"context"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return translateError(r.db.WithContext(ctx).Create(contact).Error)
}

func (r *contactRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contact).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &contact, nil
}

func (r *contactRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	contacts := []*domain.Contact{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, translateError(err)
	}
	return contacts, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	result := r.db.WithContext(ctx).
		Model(contact).
		Where("user_id = ?", contact.UserID).
		Select("contact_type", "category", "contact_first_name", "contact_surname", "phone_number", "relation", "updated_at").
		Updates(contact)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	var contact domain.Contact
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&contact)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &contact, nil
}
