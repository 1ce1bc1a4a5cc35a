package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeizureLength is how long a seizure lasted, broken into clock units.
type SeizureLength struct {
	Hours   int `json:"hours" validate:"gte=0"`
	Minutes int `json:"minutes" validate:"gte=0,lte=59"`
	Seconds int `json:"seconds" validate:"gte=0,lte=59"`
}

// Duration converts the structured length into a time.Duration
func (l SeizureLength) Duration() time.Duration {
	return time.Duration(l.Hours)*time.Hour +
		time.Duration(l.Minutes)*time.Minute +
		time.Duration(l.Seconds)*time.Second
}

type Seizure struct {
	ID          uuid.UUID                         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID                         `json:"userId" gorm:"type:uuid;not null;index"`
	Date        time.Time                         `json:"date" gorm:"not null;index"`
	Length      datatypes.JSONType[SeizureLength] `json:"length" gorm:"type:jsonb;not null"`
	SeizureType string                            `json:"seizureType" gorm:"not null"`
	Trigger     string                            `json:"trigger"`
	Comment     string                            `json:"comment"`
	CreatedAt   time.Time                         `json:"createdAt"`
	UpdatedAt   time.Time                         `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (Seizure) TableName() string {
	return "seizures"
}
