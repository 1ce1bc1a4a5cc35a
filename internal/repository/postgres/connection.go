package postgres

import (
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Seizure{},
		&domain.Contact{},
		&domain.SeizureType{},
		&domain.ContactType{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(db),
		Seizure:    NewSeizureRepository(db),
		Contact:    NewContactRepository(db),
		Vocabulary: NewVocabularyRepository(db),
	}
}
