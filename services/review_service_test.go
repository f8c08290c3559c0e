package services

import (
	"testing"

	"github.com/pachatour/pacha_tour/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregateRatingFirstApprovedReview(t *testing.T) {
	// One approved rating of 5 on an entity with no prior approved reviews.
	rating, count := AggregateRating([]int{5})
	assert.Equal(t, 5.00, rating)
	assert.Equal(t, int64(1), count)
}

func TestAggregateRatingEmptySet(t *testing.T) {
	rating, count := AggregateRating(nil)
	assert.Equal(t, 0.00, rating)
	assert.Equal(t, int64(0), count)
}

func TestAggregateRatingMeanRoundsToTwoDecimals(t *testing.T) {
	rating, count := AggregateRating([]int{4, 5})
	assert.Equal(t, 4.5, rating)
	assert.Equal(t, int64(2), count)

	// 11 / 3 = 3.666..., rounds to 3.67.
	rating, count = AggregateRating([]int{3, 4, 4})
	assert.Equal(t, 3.67, rating)
	assert.Equal(t, int64(3), count)
}

func TestApprovingTriggersRecompute(t *testing.T) {
	assert.True(t, AggregatesAffected(models.ReviewStatusPending, models.ReviewStatusApproved))
}

func TestRejectingPendingLeavesAggregatesAlone(t *testing.T) {
	assert.False(t, AggregatesAffected(models.ReviewStatusPending, models.ReviewStatusRejected))
	assert.False(t, AggregatesAffected(models.ReviewStatusPending, models.ReviewStatusHidden))
}

func TestHidingApprovedTriggersRecompute(t *testing.T) {
	assert.True(t, AggregatesAffected(models.ReviewStatusApproved, models.ReviewStatusHidden))
	assert.True(t, AggregatesAffected(models.ReviewStatusApproved, models.ReviewStatusRejected))
	// An approved review edited by its author goes back to pending and must
	// leave the aggregate as well.
	assert.True(t, AggregatesAffected(models.ReviewStatusApproved, models.ReviewStatusPending))
}
