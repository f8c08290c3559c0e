package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRetryOnDuplicateRegeneratesAfterLostRace(t *testing.T) {
	calls := 0
	err := retryOnDuplicate(bookingNumberAttempts, func() error {
		calls++
		if calls == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryOnDuplicateStopsOnOtherErrors(t *testing.T) {
	boom := errors.New("connection lost")
	calls := 0
	err := retryOnDuplicate(bookingNumberAttempts, func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryOnDuplicateGivesUpEventually(t *testing.T) {
	calls := 0
	err := retryOnDuplicate(bookingNumberAttempts, func() error {
		calls++
		return gorm.ErrDuplicatedKey
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, bookingNumberAttempts, calls)
}
