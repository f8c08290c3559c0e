package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID `gorm:"not null;unique" json:"booking_id"`
	InvoiceNumber string    `gorm:"size:30;not null;unique" json:"invoice_number"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PdfURL        string    `gorm:"size:255;not null" json:"pdf_url"`
	IssuedAt      time.Time `gorm:"not null" json:"issued_at"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
