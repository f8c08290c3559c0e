package models

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:100;not null;unique" json:"name"`
	Slug        string    `gorm:"size:120;not null;unique" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Capital     string    `gorm:"size:100" json:"capital"`
	Latitude    float64   `gorm:"type:numeric(10,7)" json:"latitude"`
	Longitude   float64   `gorm:"type:numeric(10,7)" json:"longitude"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Rating       float64 `gorm:"type:numeric(3,2);default:0.00" json:"rating"`
	ReviewsCount int     `gorm:"default:0" json:"reviews_count"`

	Attractions []Attraction `gorm:"foreignkey:DepartmentID" json:"attractions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
