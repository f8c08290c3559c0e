package models

import (
	"time"

	"github.com/google/uuid"
)

// PlannedVisit is a declared intention to visit an attraction on a target
// date, before any schedule exists for it. It holds no spots and carries no
// money; converting it into a real booking goes through the normal booking
// flow.
type PlannedVisit struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"not null" json:"user_id"`
	AttractionID uuid.UUID `gorm:"not null" json:"attraction_id"`

	TargetDate        time.Time `gorm:"not null" json:"target_date"`
	ParticipantsCount int       `gorm:"not null;default:1" json:"participants_count"`
	Notes             *string   `gorm:"type:text" json:"notes"`

	User       User       `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Attraction Attraction `gorm:"foreignkey:AttractionID" json:"attraction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
