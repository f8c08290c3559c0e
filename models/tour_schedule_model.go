package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ScheduleStatusAvailable = "available"
	ScheduleStatusFull      = "full"
	ScheduleStatusCancelled = "cancelled"
	ScheduleStatusCompleted = "completed"
)

var (
	ErrScheduleNotAvailable   = errors.New("schedule is not available for booking")
	ErrInsufficientCapacity   = errors.New("insufficient capacity on this schedule")
	ErrScheduleTerminal       = errors.New("schedule is cancelled or completed")
	ErrInvalidSpotCount       = errors.New("spot count must be positive")
	ErrScheduleNotFinishedYet = errors.New("schedule date has not passed yet")
)

type TourSchedule struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TourID uuid.UUID `gorm:"not null;uniqueIndex:idx_tour_date_start" json:"tour_id"`

	Date      time.Time `gorm:"not null;uniqueIndex:idx_tour_date_start" json:"date"`
	StartTime string    `gorm:"size:5;not null;uniqueIndex:idx_tour_date_start" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	AvailableSpots int    `gorm:"not null" json:"available_spots"`
	BookedSpots    int    `gorm:"not null;default:0" json:"booked_spots"`
	Status         string `gorm:"size:20;not null;default:'available'" json:"status"`

	// PriceOverride wins over the tour's base price when set.
	PriceOverride *float64   `gorm:"type:numeric(10,2)" json:"price_override"`
	GuideID       *uuid.UUID `json:"guide_id"`

	CancelReason *string `gorm:"type:text" json:"cancel_reason"`

	Tour  Tour  `gorm:"foreignkey:TourID" json:"tour,omitempty"`
	Guide *User `gorm:"foreignkey:GuideID" json:"guide,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *TourSchedule) Remaining() int {
	return s.AvailableSpots - s.BookedSpots
}

func (s *TourSchedule) IsTerminal() bool {
	return s.Status == ScheduleStatusCancelled || s.Status == ScheduleStatusCompleted
}

// Reserve takes n spots. It fails without mutating the schedule when the
// schedule is not open or has fewer than n spots left.
func (s *TourSchedule) Reserve(n int) error {
	if n <= 0 {
		return ErrInvalidSpotCount
	}
	if s.Status != ScheduleStatusAvailable {
		if s.IsTerminal() {
			return ErrScheduleTerminal
		}
		return ErrScheduleNotAvailable
	}
	if s.Remaining() < n {
		return ErrInsufficientCapacity
	}
	s.BookedSpots += n
	if s.BookedSpots == s.AvailableSpots {
		s.Status = ScheduleStatusFull
	}
	return nil
}

// Release gives n spots back, floored at zero. A full schedule with freed
// capacity reopens; cancelled and completed schedules reject the mutation.
func (s *TourSchedule) Release(n int) error {
	if n <= 0 {
		return ErrInvalidSpotCount
	}
	if s.IsTerminal() {
		return ErrScheduleTerminal
	}
	s.BookedSpots -= n
	if s.BookedSpots < 0 {
		s.BookedSpots = 0
	}
	if s.Status == ScheduleStatusFull && s.BookedSpots < s.AvailableSpots {
		s.Status = ScheduleStatusAvailable
	}
	return nil
}

// Cancel is allowed from available or full regardless of remaining capacity.
// Bookings already holding spots are untouched; each one releases its own
// spots when it is cancelled or refunded.
func (s *TourSchedule) Cancel(reason string) error {
	if s.IsTerminal() {
		return ErrScheduleTerminal
	}
	s.Status = ScheduleStatusCancelled
	s.CancelReason = &reason
	return nil
}

// Complete closes out a past schedule. The date guard lives with the caller.
func (s *TourSchedule) Complete() error {
	if s.IsTerminal() {
		return ErrScheduleTerminal
	}
	s.Status = ScheduleStatusCompleted
	return nil
}

// DepartureAt combines the schedule date with its start time.
func (s *TourSchedule) DepartureAt() time.Time {
	t, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return s.Date
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), t.Hour(), t.Minute(), 0, 0, s.Date.Location())
}

// EndsAt combines the schedule date with its end time.
func (s *TourSchedule) EndsAt() time.Time {
	t, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return s.Date
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), t.Hour(), t.Minute(), 0, 0, s.Date.Location())
}

// EffectivePricePerPerson applies the per-date override when present.
func (s *TourSchedule) EffectivePricePerPerson(basePrice float64) float64 {
	if s.PriceOverride != nil && *s.PriceOverride > 0 {
		return *s.PriceOverride
	}
	return basePrice
}
