package models

import "github.com/google/uuid"

// TourAttraction is the ordered join between a tour and the attractions it
// visits. VisitOrder starts at 1 and is unique within a tour.
type TourAttraction struct {
	TourID       uuid.UUID `gorm:"primary_key;uniqueIndex:idx_tour_visit_order" json:"tour_id"`
	AttractionID uuid.UUID `gorm:"primary_key" json:"attraction_id"`
	VisitOrder   int       `gorm:"not null;uniqueIndex:idx_tour_visit_order" json:"visit_order"`
	StayMinutes  int       `gorm:"not null;default:60" json:"stay_minutes"`

	Tour       Tour       `gorm:"foreignkey:TourID" json:"-"`
	Attraction Attraction `gorm:"foreignkey:AttractionID" json:"-"`
}

func (TourAttraction) TableName() string {
	return "tour_attractions"
}
