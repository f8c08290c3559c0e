package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TourTypeCultural    = "cultural"
	TourTypeAdventure   = "adventure"
	TourTypeGastronomic = "gastronomic"
	TourTypeNature      = "nature"
	TourTypeMystic      = "mystic"

	TourDifficultyEasy     = "easy"
	TourDifficultyModerate = "moderate"
	TourDifficultyHard     = "hard"
)

type Tour struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"size:150;not null" json:"name"`
	Slug            string    `gorm:"size:170;not null;unique" json:"slug"`
	Description     string    `gorm:"type:text" json:"description"`
	Type            string    `gorm:"size:30;not null" json:"type"`
	Difficulty      string    `gorm:"size:20;not null;default:'easy'" json:"difficulty"`
	DurationHours   int       `gorm:"not null" json:"duration_hours"`
	PricePerPerson  float64   `gorm:"type:numeric(10,2);not null" json:"price_per_person"`
	MinParticipants int       `gorm:"not null;default:1" json:"min_participants"`
	MaxParticipants int       `gorm:"not null" json:"max_participants"`

	// CommissionRate overrides the platform-wide rate when greater than zero.
	CommissionRate float64 `gorm:"type:numeric(5,2);default:0.00" json:"commission_rate"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsFeatured bool `gorm:"default:false" json:"is_featured"`

	Rating        float64 `gorm:"type:numeric(3,2);default:0.00" json:"rating"`
	ReviewsCount  int     `gorm:"default:0" json:"reviews_count"`
	BookingsCount int     `gorm:"default:0" json:"bookings_count"`

	Attractions []*Attraction  `gorm:"many2many:tour_attractions;" json:"attractions,omitempty"`
	Schedules   []TourSchedule `gorm:"foreignkey:TourID" json:"schedules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
