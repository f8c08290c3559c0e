package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPendingReviewIsAlwaysEditable(t *testing.T) {
	r := &Review{
		Status:    ReviewStatusPending,
		CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	}
	assert.True(t, r.CanEdit(time.Now()))
}

func TestModeratedReviewEditableInsideWindow(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	r := &Review{
		Status:    ReviewStatusApproved,
		CreatedAt: now.Add(-12 * time.Hour),
	}
	assert.True(t, r.CanEdit(now))

	r.CreatedAt = now.Add(-25 * time.Hour)
	assert.False(t, r.CanEdit(now))
}

func TestRejectedReviewFollowsSameWindow(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	r := &Review{
		Status:    ReviewStatusRejected,
		CreatedAt: now.Add(-ReviewEditWindow),
	}
	assert.False(t, r.CanEdit(now))
}
