package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrScheduleHasBookings = errors.New("schedule has confirmed or paid bookings")
	ErrCapacityBelowBooked = errors.New("capacity cannot drop below already booked spots")
	ErrScheduleExists      = errors.New("a schedule for this tour, date and start time already exists")
)

// lockSchedule re-reads a schedule row under SELECT ... FOR UPDATE so that
// capacity checks and counter updates happen atomically.
func lockSchedule(tx *gorm.DB, scheduleID uuid.UUID) (*models.TourSchedule, error) {
	var schedule models.TourSchedule
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&schedule, "id = ?", scheduleID).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

type ScheduleInput struct {
	TourID         uuid.UUID
	Date           time.Time
	StartTime      string
	EndTime        string
	AvailableSpots int
	PriceOverride  *float64
	GuideID        *uuid.UUID
}

func CreateSchedule(in ScheduleInput) (*models.TourSchedule, error) {
	var count int64
	database.DB.Model(&models.TourSchedule{}).
		Where("tour_id = ? AND date = ? AND start_time = ?", in.TourID, in.Date, in.StartTime).
		Count(&count)
	if count > 0 {
		return nil, ErrScheduleExists
	}

	schedule := models.TourSchedule{
		TourID:         in.TourID,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		AvailableSpots: in.AvailableSpots,
		PriceOverride:  in.PriceOverride,
		GuideID:        in.GuideID,
		Status:         models.ScheduleStatusAvailable,
	}
	if err := database.DB.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// BulkCreateSchedules creates one schedule per day across [from, to],
// skipping days that already have one at the same start time.
func BulkCreateSchedules(in ScheduleInput, from, to time.Time) ([]models.TourSchedule, error) {
	var created []models.TourSchedule
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dayInput := in
		dayInput.Date = day
		schedule, err := CreateSchedule(dayInput)
		if err != nil {
			if errors.Is(err, ErrScheduleExists) {
				continue
			}
			return created, err
		}
		created = append(created, *schedule)
	}
	return created, nil
}

// UpdateScheduleCapacity changes the spot capacity. Blocked entirely once
// confirmed or paid bookings exist, and never below the booked counter.
func UpdateScheduleCapacity(scheduleID uuid.UUID, newCapacity int) (*models.TourSchedule, error) {
	var updated *models.TourSchedule
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		schedule, err := lockSchedule(tx, scheduleID)
		if err != nil {
			return err
		}
		if schedule.IsTerminal() {
			return models.ErrScheduleTerminal
		}

		var held int64
		if err := tx.Model(&models.Booking{}).
			Where("tour_schedule_id = ? AND status IN ?", scheduleID, []string{models.BookingStatusConfirmed, models.BookingStatusPaid}).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			return ErrScheduleHasBookings
		}
		if newCapacity < schedule.BookedSpots {
			return ErrCapacityBelowBooked
		}

		schedule.AvailableSpots = newCapacity
		if schedule.Status == models.ScheduleStatusFull && schedule.BookedSpots < newCapacity {
			schedule.Status = models.ScheduleStatusAvailable
		}
		if schedule.BookedSpots == newCapacity {
			schedule.Status = models.ScheduleStatusFull
		}
		updated = schedule
		return tx.Save(schedule).Error
	})
	return updated, err
}

func CancelSchedule(scheduleID uuid.UUID, reason string) (*models.TourSchedule, error) {
	var cancelled *models.TourSchedule
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		schedule, err := lockSchedule(tx, scheduleID)
		if err != nil {
			return err
		}
		if err := schedule.Cancel(reason); err != nil {
			return err
		}
		cancelled = schedule
		return tx.Save(schedule).Error
	})
	return cancelled, err
}

func CompleteSchedule(scheduleID uuid.UUID, now time.Time) (*models.TourSchedule, error) {
	var completed *models.TourSchedule
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		schedule, err := lockSchedule(tx, scheduleID)
		if err != nil {
			return err
		}
		if schedule.EndsAt().After(now) {
			return models.ErrScheduleNotFinishedYet
		}
		if err := schedule.Complete(); err != nil {
			return err
		}
		completed = schedule
		return tx.Save(schedule).Error
	})
	return completed, err
}
