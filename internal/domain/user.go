package domain

import (
	"time"

	"github.com/google/uuid"
)

// Length limits on credentials. MaxPasswordBytes is the bcrypt input limit.
const (
	MinEmailLength    = 5
	MinPasswordLength = 5
	MaxPasswordBytes  = 72
)

type User struct {
	ID           uuid.UUID  `json:"userId" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	AccessToken  string     `json:"-" gorm:"uniqueIndex;not null"`
	FirstName    string     `json:"firstName" gorm:"not null;default:''"`
	Surname      string     `json:"surname" gorm:"not null;default:''"`
	BirthDate    *time.Time `json:"birthDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}
