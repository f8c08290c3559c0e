package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttractionTypeNatural      = "natural"
	AttractionTypeCultural     = "cultural"
	AttractionTypeHistorical   = "historical"
	AttractionTypeArchaeologic = "archaeological"
	AttractionTypeGastronomic  = "gastronomic"
	AttractionTypeAdventure    = "adventure"
)

type Attraction struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DepartmentID uuid.UUID `gorm:"not null" json:"department_id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Slug         string    `gorm:"size:170;not null;unique" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	Type         string    `gorm:"size:30;not null" json:"type"`
	Latitude     float64   `gorm:"type:numeric(10,7)" json:"latitude"`
	Longitude    float64   `gorm:"type:numeric(10,7)" json:"longitude"`
	Altitude     *int      `json:"altitude"`
	EntryFee     float64   `gorm:"type:numeric(10,2);default:0.00" json:"entry_fee"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	Rating       float64 `gorm:"type:numeric(3,2);default:0.00" json:"rating"`
	ReviewsCount int     `gorm:"default:0" json:"reviews_count"`
	VisitsCount  int     `gorm:"default:0" json:"visits_count"`

	Department Department `gorm:"foreignkey:DepartmentID" json:"department,omitempty"`
	Tours      []*Tour    `gorm:"many2many:tour_attractions;" json:"tours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
