// Package memory implements the repository interfaces on process memory.
// It mirrors the Postgres behavior the services depend on: unique email and
// access token, owner-scoped record access, and list ordering.
package memory

import (
	"github.com/dom/ep-app-api/internal/repository"
)

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(),
		Seizure:    NewSeizureRepository(),
		Contact:    NewContactRepository(),
		Vocabulary: NewVocabularyRepository(),
	}
}
