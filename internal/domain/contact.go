package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an emergency or care contact kept by a user. Category mirrors
// the category of ContactType at the time of the last write.
type Contact struct {
	ID               uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID       `json:"userId" gorm:"type:uuid;not null;index"`
	ContactType      string          `json:"contactType" gorm:"not null"`
	Category         ContactCategory `json:"category" gorm:"type:varchar(20);not null"`
	ContactFirstName string          `json:"contactFirstName"`
	ContactSurname   string          `json:"contactSurname"`
	PhoneNumber      string          `json:"phoneNumber"`
	Relation         string          `json:"relation"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}
