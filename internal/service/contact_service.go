package service

import (
	"context"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"github.com/dom/ep-app-api/internal/validation"
	"github.com/google/uuid"
)

type ContactService struct {
	contactRepo repository.ContactRepository
	vocabRepo   repository.VocabularyRepository
}

func NewContactService(contactRepo repository.ContactRepository, vocabRepo repository.VocabularyRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		vocabRepo:   vocabRepo,
	}
}

type CreateContactInput struct {
	ContactType      string `json:"contactType" validate:"required"`
	ContactFirstName string `json:"contactFirstName"`
	ContactSurname   string `json:"contactSurname"`
	PhoneNumber      string `json:"phoneNumber"`
	Relation         string `json:"relation"`
}

// UpdateContactInput holds a partial update; nil fields keep their value.
type UpdateContactInput struct {
	ContactType      *string `json:"contactType"`
	ContactFirstName *string `json:"contactFirstName"`
	ContactSurname   *string `json:"contactSurname"`
	PhoneNumber      *string `json:"phoneNumber"`
	Relation         *string `json:"relation"`
}

// Create stores a contact; Category is always taken from the contact type.
func (s *ContactService) Create(ctx context.Context, userID uuid.UUID, input CreateContactInput) (*domain.Contact, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	contactType, err := lookupContactType(ctx, s.vocabRepo, input.ContactType)
	if err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		ID:               uuid.New(),
		UserID:           userID,
		ContactType:      contactType.Name,
		Category:         contactType.Category,
		ContactFirstName: input.ContactFirstName,
		ContactSurname:   input.ContactSurname,
		PhoneNumber:      input.PhoneNumber,
		Relation:         input.Relation,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	return s.contactRepo.GetByUserID(ctx, userID)
}

func (s *ContactService) Update(ctx context.Context, userID, id uuid.UUID, input UpdateContactInput) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.ContactType != nil {
		contactType, err := lookupContactType(ctx, s.vocabRepo, *input.ContactType)
		if err != nil {
			return nil, err
		}
		contact.ContactType = contactType.Name
		contact.Category = contactType.Category
	}
	if input.ContactFirstName != nil {
		contact.ContactFirstName = *input.ContactFirstName
	}
	if input.ContactSurname != nil {
		contact.ContactSurname = *input.ContactSurname
	}
	if input.PhoneNumber != nil {
		contact.PhoneNumber = *input.PhoneNumber
	}
	if input.Relation != nil {
		contact.Relation = *input.Relation
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error) {
	return s.contactRepo.Delete(ctx, id, userID)
}
