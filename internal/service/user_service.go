package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"github.com/dom/ep-app-api/internal/validation"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo    repository.UserRepository
	seizureRepo repository.SeizureRepository
	contactRepo repository.ContactRepository
	hasher      *PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, seizureRepo repository.SeizureRepository, contactRepo repository.ContactRepository, hasher *PasswordHasher) *UserService {
	return &UserService{
		userRepo:    userRepo,
		seizureRepo: seizureRepo,
		contactRepo: contactRepo,
		hasher:      hasher,
	}
}

// UserData is a user's profile together with every record they own
type UserData struct {
	User     *domain.User
	Seizures []*domain.Seizure
	Contacts []*domain.Contact
}

// UpdateUserInput holds a partial profile update; nil fields keep their value.
type UpdateUserInput struct {
	FirstName *string    `json:"firstName"`
	Surname   *string    `json:"surname"`
	BirthDate *time.Time `json:"birthDate"`
	Password  *string    `json:"password" validate:"omitnil,min=5,max=72"`
}

func (s *UserService) GetUserData(ctx context.Context, userID uuid.UUID) (*UserData, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seizures, err := s.seizureRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seizures: %w", err)
	}

	contacts, err := s.contactRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &UserData{
		User:     user,
		Seizures: seizures,
		Contacts: contacts,
	}, nil
}

// Update applies a profile change. The stored hash is replaced only when the
// submitted password differs from the current one, so a hash is never
// hashed again.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.Surname != nil {
		user.Surname = strings.TrimSpace(*input.Surname)
	}
	if input.BirthDate != nil {
		birthDate := input.BirthDate.UTC()
		user.BirthDate = &birthDate
	}
	if input.Password != nil && !s.hasher.Verify(user.PasswordHash, *input.Password) {
		hashed, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
