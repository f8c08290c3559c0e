package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newSchedule(capacity, booked int, status string) *TourSchedule {
	return &TourSchedule{
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "08:30",
		EndTime:        "17:00",
		AvailableSpots: capacity,
		BookedSpots:    booked,
		Status:         status,
	}
}

func TestReserveTakesSpots(t *testing.T) {
	s := newSchedule(10, 0, ScheduleStatusAvailable)

	err := s.Reserve(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, s.BookedSpots)
	assert.Equal(t, 7, s.Remaining())
	assert.Equal(t, ScheduleStatusAvailable, s.Status)
}

func TestReserveFlipsToFullAtCapacity(t *testing.T) {
	s := newSchedule(5, 3, ScheduleStatusAvailable)

	err := s.Reserve(2)
	assert.NoError(t, err)
	assert.Equal(t, ScheduleStatusFull, s.Status)
	assert.Equal(t, 0, s.Remaining())
}

func TestReserveRejectsOverbooking(t *testing.T) {
	s := newSchedule(5, 3, ScheduleStatusAvailable)

	err := s.Reserve(3)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Equal(t, 3, s.BookedSpots, "failed reserve must not mutate the schedule")
	assert.Equal(t, ScheduleStatusAvailable, s.Status)
}

func TestReserveRejectsNonPositiveCount(t *testing.T) {
	s := newSchedule(5, 0, ScheduleStatusAvailable)

	assert.ErrorIs(t, s.Reserve(0), ErrInvalidSpotCount)
	assert.ErrorIs(t, s.Reserve(-2), ErrInvalidSpotCount)
	assert.Equal(t, 0, s.BookedSpots)
}

func TestReserveRejectsClosedSchedules(t *testing.T) {
	full := newSchedule(5, 5, ScheduleStatusFull)
	assert.ErrorIs(t, full.Reserve(1), ErrScheduleNotAvailable)

	cancelled := newSchedule(5, 2, ScheduleStatusCancelled)
	assert.ErrorIs(t, cancelled.Reserve(1), ErrScheduleTerminal)

	completed := newSchedule(5, 2, ScheduleStatusCompleted)
	assert.ErrorIs(t, completed.Reserve(1), ErrScheduleTerminal)
}

func TestReleaseReopensFullSchedule(t *testing.T) {
	s := newSchedule(5, 5, ScheduleStatusFull)

	err := s.Release(2)
	assert.NoError(t, err)
	assert.Equal(t, 3, s.BookedSpots)
	assert.Equal(t, ScheduleStatusAvailable, s.Status)
}

func TestReleaseFloorsAtZero(t *testing.T) {
	s := newSchedule(5, 1, ScheduleStatusAvailable)

	err := s.Release(4)
	assert.NoError(t, err)
	assert.Equal(t, 0, s.BookedSpots)
}

func TestReleaseRejectsTerminalSchedules(t *testing.T) {
	s := newSchedule(5, 3, ScheduleStatusCancelled)

	err := s.Release(1)
	assert.ErrorIs(t, err, ErrScheduleTerminal)
	assert.Equal(t, 3, s.BookedSpots)
}

func TestCancelFromAnyOpenState(t *testing.T) {
	for _, status := range []string{ScheduleStatusAvailable, ScheduleStatusFull} {
		s := newSchedule(5, 2, status)
		err := s.Cancel("guide unavailable")
		assert.NoError(t, err)
		assert.Equal(t, ScheduleStatusCancelled, s.Status)
		assert.Equal(t, "guide unavailable", *s.CancelReason)
	}
}

func TestCancelAndCompleteRejectTerminalStates(t *testing.T) {
	s := newSchedule(5, 2, ScheduleStatusCompleted)
	assert.ErrorIs(t, s.Cancel("too late"), ErrScheduleTerminal)
	assert.ErrorIs(t, s.Complete(), ErrScheduleTerminal)
}

func TestCompleteClosesOpenSchedule(t *testing.T) {
	s := newSchedule(5, 5, ScheduleStatusFull)

	err := s.Complete()
	assert.NoError(t, err)
	assert.Equal(t, ScheduleStatusCompleted, s.Status)
}

func TestDepartureAtCombinesDateAndStartTime(t *testing.T) {
	s := newSchedule(5, 0, ScheduleStatusAvailable)

	departure := s.DepartureAt()
	assert.Equal(t, time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC), departure)

	ends := s.EndsAt()
	assert.Equal(t, time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC), ends)
}

func TestEffectivePricePerPerson(t *testing.T) {
	s := newSchedule(5, 0, ScheduleStatusAvailable)
	assert.Equal(t, 150.0, s.EffectivePricePerPerson(150.0))

	override := 120.0
	s.PriceOverride = &override
	assert.Equal(t, 120.0, s.EffectivePricePerPerson(150.0))
}

func TestFiveSpotBookingScenario(t *testing.T) {
	s := newSchedule(5, 0, ScheduleStatusAvailable)

	assert.NoError(t, s.Reserve(2))
	assert.NoError(t, s.Reserve(2))
	assert.ErrorIs(t, s.Reserve(2), ErrInsufficientCapacity)
	assert.NoError(t, s.Reserve(1))
	assert.Equal(t, ScheduleStatusFull, s.Status)

	assert.NoError(t, s.Release(2))
	assert.Equal(t, ScheduleStatusAvailable, s.Status)
	assert.NoError(t, s.Reserve(2))
	assert.Equal(t, ScheduleStatusFull, s.Status)
}
