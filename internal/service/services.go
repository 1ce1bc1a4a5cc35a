package service

import (
	"github.com/dom/ep-app-api/internal/config"
	"github.com/dom/ep-app-api/internal/repository"
)

type Services struct {
	Auth       *AuthService
	User       *UserService
	Seizure    *SeizureService
	Contact    *ContactService
	Vocabulary *VocabularyService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := NewPasswordHasher(cfg.BcryptCost)
	return &Services{
		Auth:       NewAuthService(repos.User, hasher, NewAccessToken),
		User:       NewUserService(repos.User, repos.Seizure, repos.Contact, hasher),
		Seizure:    NewSeizureService(repos.Seizure, repos.Vocabulary),
		Contact:    NewContactService(repos.Contact, repos.Vocabulary),
		Vocabulary: NewVocabularyService(repos.Vocabulary),
	}
}
