package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTourInactive        = errors.New("tour is not active")
	ErrTooManyParticipants = errors.New("participants exceed the tour maximum")
	ErrNotYourBooking      = errors.New("booking belongs to another user")
	ErrDepartureNotPassed  = errors.New("tour departure has not passed yet")
)

const bookingNumberAttempts = 3

// retryOnDuplicate re-runs fn when it lost a booking-number race: two
// transactions can generate the same number before either commits, so the
// loser hits the unique index and the whole transaction must be retried with
// a fresh number.
func retryOnDuplicate(attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// CreateBooking registers a pending booking. Amounts and the commission rate
// are fixed here and never recomputed; spots are only taken at confirmation.
// The capacity check here is advisory, confirmation re-checks under lock.
func CreateBooking(userID, scheduleID uuid.UUID, participants int, notes *string) (*models.Booking, error) {
	var schedule models.TourSchedule
	if err := database.DB.Preload("Tour").First(&schedule, "id = ?", scheduleID).Error; err != nil {
		return nil, err
	}
	if !schedule.Tour.IsActive {
		return nil, ErrTourInactive
	}
	if participants > schedule.Tour.MaxParticipants {
		return nil, ErrTooManyParticipants
	}
	if schedule.Status != models.ScheduleStatusAvailable {
		return nil, models.ErrScheduleNotAvailable
	}
	if schedule.Remaining() < participants {
		return nil, models.ErrInsufficientCapacity
	}

	pricePerPerson := schedule.EffectivePricePerPerson(schedule.Tour.PricePerPerson)
	totalAmount := float64(participants) * pricePerPerson
	rate := ResolveCommissionRate(&schedule.Tour)

	var booking models.Booking
	err := retryOnDuplicate(bookingNumberAttempts, func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			number, err := utils.GenerateBookingNumber(tx)
			if err != nil {
				return err
			}

			booking = models.Booking{
				BookingNumber:     number,
				UserID:            userID,
				TourScheduleID:    schedule.ID,
				ParticipantsCount: participants,
				PricePerPerson:    pricePerPerson,
				TotalAmount:       totalAmount,
				CommissionRate:    rate,
				CommissionAmount:  CommissionAmount(totalAmount, rate),
				Status:            models.BookingStatusPending,
				PaymentStatus:     models.PaymentStatusPending,
				Notes:             notes,
			}
			return tx.Create(&booking).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ConfirmBooking re-validates availability under a row lock, reserves the
// spots and moves the booking to confirmed. Two bookings racing for the last
// spots serialize on the schedule row; the loser fails without side effects.
func ConfirmBooking(bookingID, userID uuid.UUID) (*models.Booking, error) {
	var confirmed *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if booking.UserID != userID {
			return ErrNotYourBooking
		}

		schedule, err := lockSchedule(tx, booking.TourScheduleID)
		if err != nil {
			return err
		}
		if err := schedule.Reserve(booking.ParticipantsCount); err != nil {
			return err
		}
		if err := booking.Confirm(time.Now()); err != nil {
			return err
		}

		if err := tx.Save(schedule).Error; err != nil {
			return err
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Tour{}).Where("id = ?", schedule.TourID).
			Update("bookings_count", gorm.Expr("bookings_count + 1")).Error; err != nil {
			return err
		}
		confirmed = &booking
		return nil
	})
	return confirmed, err
}

// PayBooking records the payment, derives the commission row and leaves spot
// counters alone, they were consumed at confirmation.
func PayBooking(bookingID, userID uuid.UUID, method, reference string) (*models.Booking, error) {
	var paid *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("TourSchedule").First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if booking.UserID != userID {
			return ErrNotYourBooking
		}
		now := time.Now()
		if err := booking.MarkAsPaid(method, reference, now); err != nil {
			return err
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		payment := models.Payment{
			BookingID: booking.ID,
			Amount:    booking.TotalAmount,
			Method:    method,
			Reference: &reference,
			Status:    models.PaymentRecordSucceeded,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := CreateCommissionForBooking(tx, &booking, booking.TourSchedule.TourID); err != nil {
			return err
		}
		paid = &booking
		return nil
	})
	return paid, err
}

// CancelBooking applies the 24 hour guard and releases spots only when the
// booking had actually reserved them (confirmed or paid).
func CancelBooking(bookingID uuid.UUID, userID *uuid.UUID, reason string) (*models.Booking, error) {
	var cancelled *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if userID != nil && booking.UserID != *userID {
			return ErrNotYourBooking
		}

		schedule, err := lockSchedule(tx, booking.TourScheduleID)
		if err != nil {
			return err
		}

		heldSpots := booking.HoldsSpots()
		if err := booking.Cancel(reason, schedule.DepartureAt(), time.Now()); err != nil {
			return err
		}
		if heldSpots {
			// A cancelled schedule keeps its counters frozen.
			if err := schedule.Release(booking.ParticipantsCount); err != nil && !errors.Is(err, models.ErrScheduleTerminal) {
				return err
			}
			if err := tx.Save(schedule).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		cancelled = &booking
		return nil
	})
	return cancelled, err
}

// RefundBooking is an admin action on a paid booking. A nil amount refunds
// the full total. Spots go back to the schedule.
func RefundBooking(bookingID uuid.UUID, amount *float64, reason string) (*models.Booking, error) {
	var refunded *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}

		schedule, err := lockSchedule(tx, booking.TourScheduleID)
		if err != nil {
			return err
		}

		heldSpots := booking.HoldsSpots()
		if err := booking.Refund(amount, time.Now()); err != nil {
			return err
		}
		if reason != "" {
			booking.CancelReason = &reason
		}
		if heldSpots {
			if err := schedule.Release(booking.ParticipantsCount); err != nil && !errors.Is(err, models.ErrScheduleTerminal) {
				return err
			}
			if err := tx.Save(schedule).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		refunded = &booking
		return nil
	})
	return refunded, err
}

// CompleteBooking and MarkBookingNoShow are administrative terminal moves
// after the departure has passed. Spots stay consumed.
func CompleteBooking(bookingID uuid.UUID) (*models.Booking, error) {
	return terminalTransition(bookingID, func(b *models.Booking) error { return b.Complete() })
}

func MarkBookingNoShow(bookingID uuid.UUID) (*models.Booking, error) {
	return terminalTransition(bookingID, func(b *models.Booking) error { return b.MarkNoShow() })
}

func terminalTransition(bookingID uuid.UUID, transition func(*models.Booking) error) (*models.Booking, error) {
	var result *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("TourSchedule").First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if booking.TourSchedule.DepartureAt().After(time.Now()) {
			return ErrDepartureNotPassed
		}
		if err := transition(&booking); err != nil {
			return err
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		result = &booking
		return nil
	})
	return result, err
}
