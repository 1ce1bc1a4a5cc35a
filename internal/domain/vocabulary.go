package domain

import (
	"fmt"
	"strings"
)

type ContactCategory string

const (
	CategoryMedical  ContactCategory = "medical"
	CategoryPersonal ContactCategory = "personal"
)

var AllContactCategories = []ContactCategory{CategoryMedical, CategoryPersonal}

func (c ContactCategory) IsValid() bool {
	for _, valid := range AllContactCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// SeizureType is an entry of the seizure type reference table
type SeizureType struct {
	Name        string `json:"name" gorm:"primaryKey"`
	Description string `json:"description"`
}

// TableName returns the table name for GORM
func (SeizureType) TableName() string {
	return "seizure_types"
}

// ContactType is an entry of the contact type reference table
type ContactType struct {
	Name     string          `json:"name" gorm:"primaryKey"`
	Category ContactCategory `json:"category" gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (ContactType) TableName() string {
	return "contact_types"
}

// Vocabulary is the full reference data set loaded at startup.
type Vocabulary struct {
	SeizureTypes []SeizureType `json:"seizureTypes"`
	ContactTypes []ContactType `json:"contactTypes"`
}

// Validate checks that names are non-empty and unique per table and that
// every contact type has a known category.
func (v Vocabulary) Validate() error {
	if len(v.SeizureTypes) == 0 {
		return fmt.Errorf("vocabulary has no seizure types")
	}
	if len(v.ContactTypes) == 0 {
		return fmt.Errorf("vocabulary has no contact types")
	}

	seen := make(map[string]bool, len(v.SeizureTypes))
	for i, st := range v.SeizureTypes {
		name := strings.TrimSpace(st.Name)
		if name == "" {
			return fmt.Errorf("seizure type %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate seizure type %q", name)
		}
		seen[name] = true
	}

	seen = make(map[string]bool, len(v.ContactTypes))
	for i, ct := range v.ContactTypes {
		name := strings.TrimSpace(ct.Name)
		if name == "" {
			return fmt.Errorf("contact type %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate contact type %q", name)
		}
		if !ct.Category.IsValid() {
			return fmt.Errorf("contact type %q has invalid category %q", name, ct.Category)
		}
		seen[name] = true
	}
	return nil
}
