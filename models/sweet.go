package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categories lists every category a sweet may belong to. Create and update
// payloads are rejected when the category falls outside this set.
var Categories = []string{
	"chocolate",
	"candy",
	"gummy",
	"hard-candy",
	"lollipop",
	"toffee",
	"fudge",
	"marshmallow",
	"cake",
	"cookie",
	"pastry",
}

// Sweet model corresponds to the 'sweets' table in the database.
type Sweet struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an opaque ID if the caller did not provide one.
func (s *Sweet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsValidCategory reports whether c belongs to the Categories set.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
