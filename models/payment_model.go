package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment record statuses. Distinct from the booking's payment_status, which
// tracks the booking as a whole.
const (
	PaymentRecordSucceeded = "succeeded"
	PaymentRecordFailed    = "failed"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null" json:"booking_id"`

	Amount    float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency  string  `gorm:"size:3;not null;default:'PEN'" json:"currency"`
	Method    string  `gorm:"size:30;not null" json:"method"`
	Reference *string `gorm:"size:100;unique" json:"reference"`
	Status    string  `gorm:"size:20;not null" json:"status"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
