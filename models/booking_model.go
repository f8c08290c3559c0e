package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusRefunded  = "refunded"
	BookingStatusNoShow    = "no_show"

	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// CancellationWindow is the minimum lead time before departure for a
// cancellation to be accepted.
const CancellationWindow = 24 * time.Hour

var (
	ErrBookingNotPending     = errors.New("only pending bookings can be confirmed")
	ErrBookingNotConfirmed   = errors.New("only confirmed bookings can be marked as paid")
	ErrBookingNotCancelable  = errors.New("booking can no longer be cancelled")
	ErrCancellationTooLate   = errors.New("bookings cannot be cancelled within 24 hours of departure")
	ErrBookingNotRefundable  = errors.New("only paid bookings can be refunded")
	ErrBookingNotCompletable = errors.New("only confirmed or paid bookings can be completed")
	ErrRefundExceedsTotal    = errors.New("refund amount exceeds the booking total")
)

type Booking struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingNumber  string    `gorm:"size:30;not null;unique" json:"booking_number"`
	UserID         uuid.UUID `gorm:"not null" json:"user_id"`
	TourScheduleID uuid.UUID `gorm:"not null" json:"tour_schedule_id"`

	ParticipantsCount int     `gorm:"not null" json:"participants_count"`
	PricePerPerson    float64 `gorm:"type:numeric(10,2);not null" json:"price_per_person"`
	TotalAmount       float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	CommissionRate    float64 `gorm:"type:numeric(5,2);not null" json:"commission_rate"`
	CommissionAmount  float64 `gorm:"type:numeric(10,2);not null" json:"commission_amount"`

	Status        string `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;not null;default:'pending'" json:"payment_status"`

	PaymentMethod    *string  `gorm:"size:30" json:"payment_method"`
	PaymentReference *string  `gorm:"size:100" json:"payment_reference"`
	RefundAmount     *float64 `gorm:"type:numeric(10,2)" json:"refund_amount"`
	CancelReason     *string  `gorm:"type:text" json:"cancel_reason"`
	Notes            *string  `gorm:"type:text" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	PaidAt      *time.Time `json:"paid_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	RefundedAt  *time.Time `json:"refunded_at"`

	User         User         `gorm:"foreignkey:UserID" json:"user,omitempty"`
	TourSchedule TourSchedule `gorm:"foreignkey:TourScheduleID" json:"tour_schedule,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HoldsSpots reports whether the booking currently has spots reserved on its
// schedule. Spots are taken at confirmation and kept through payment.
func (b *Booking) HoldsSpots() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusPaid
}

func (b *Booking) Confirm(now time.Time) error {
	if b.Status != BookingStatusPending {
		return ErrBookingNotPending
	}
	b.Status = BookingStatusConfirmed
	b.ConfirmedAt = &now
	return nil
}

func (b *Booking) MarkAsPaid(method, reference string, now time.Time) error {
	if b.Status != BookingStatusConfirmed {
		return ErrBookingNotConfirmed
	}
	b.Status = BookingStatusPaid
	b.PaymentStatus = PaymentStatusPaid
	b.PaymentMethod = &method
	b.PaymentReference = &reference
	b.PaidAt = &now
	return nil
}

// Cancel enforces the 24 hour lead-time guard against the schedule departure.
// It does not touch spot counters; the service releases them when HoldsSpots
// was true before the transition.
func (b *Booking) Cancel(reason string, departure, now time.Time) error {
	switch b.Status {
	case BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded:
		return ErrBookingNotCancelable
	}
	if departure.Sub(now) <= CancellationWindow {
		return ErrCancellationTooLate
	}
	b.Status = BookingStatusCancelled
	b.CancelReason = &reason
	b.CancelledAt = &now
	return nil
}

// Refund moves a paid booking to refunded. A nil amount means a full refund.
func (b *Booking) Refund(amount *float64, now time.Time) error {
	if b.Status != BookingStatusPaid && b.Status != BookingStatusConfirmed {
		return ErrBookingNotRefundable
	}
	if b.PaymentStatus != PaymentStatusPaid {
		return ErrBookingNotRefundable
	}
	refund := b.TotalAmount
	if amount != nil {
		if *amount > b.TotalAmount {
			return ErrRefundExceedsTotal
		}
		refund = *amount
	}
	b.Status = BookingStatusRefunded
	b.PaymentStatus = PaymentStatusRefunded
	b.RefundAmount = &refund
	b.RefundedAt = &now
	return nil
}

func (b *Booking) Complete() error {
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusPaid {
		return ErrBookingNotCompletable
	}
	b.Status = BookingStatusCompleted
	return nil
}

func (b *Booking) MarkNoShow() error {
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusPaid {
		return ErrBookingNotCompletable
	}
	b.Status = BookingStatusNoShow
	return nil
}
