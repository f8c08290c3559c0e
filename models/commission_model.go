package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CommissionStatusPending = "pending"
	CommissionStatusPaid    = "paid"
)

// Commission is the platform's cut of a booking, derived once when the
// booking is paid. Period fields exist for monthly reporting.
type Commission struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;unique" json:"booking_id"`
	TourID    uuid.UUID `gorm:"not null" json:"tour_id"`

	Rate   float64 `gorm:"type:numeric(5,2);not null" json:"rate"`
	Amount float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	PeriodMonth int `gorm:"not null" json:"period_month"`
	PeriodYear  int `gorm:"not null" json:"period_year"`

	PaidAt *time.Time `json:"paid_at"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`
	Tour    Tour    `gorm:"foreignkey:TourID" json:"tour,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
