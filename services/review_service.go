package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/utils"
	"gorm.io/gorm"
)

var (
	ErrUnknownReviewable  = errors.New("unknown reviewable type")
	ErrReviewableNotFound = errors.New("reviewable entity not found")
	ErrBookingNotReviewed = errors.New("only your own completed bookings can be reviewed")
	ErrAlreadyReviewed    = errors.New("this booking already has a review")
	ErrUnknownModeration  = errors.New("unknown moderation action")
	ErrNotYourReview      = errors.New("review belongs to another user")
)

type ReviewInput struct {
	UserID         uuid.UUID
	ReviewableType string
	ReviewableID   uuid.UUID
	BookingID      *uuid.UUID
	Rating         int
	Title          string
	Comment        string
}

// SubmitReview creates a pending review. Aggregates are untouched until the
// review is approved.
func SubmitReview(in ReviewInput) (*models.Review, error) {
	if err := reviewableExists(database.DB, in.ReviewableType, in.ReviewableID); err != nil {
		return nil, err
	}

	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if in.BookingID != nil {
			var booking models.Booking
			if err := tx.First(&booking, "id = ?", *in.BookingID).Error; err != nil {
				return ErrBookingNotReviewed
			}
			if booking.UserID != in.UserID || booking.Status != models.BookingStatusCompleted {
				return ErrBookingNotReviewed
			}
			var existing models.Review
			if err := tx.Where("booking_id = ?", *in.BookingID).First(&existing).Error; err == nil {
				return ErrAlreadyReviewed
			}
		}

		review = models.Review{
			UserID:         in.UserID,
			ReviewableType: in.ReviewableType,
			ReviewableID:   in.ReviewableID,
			BookingID:      in.BookingID,
			Rating:         in.Rating,
			Title:          in.Title,
			Comment:        in.Comment,
			Status:         models.ReviewStatusPending,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview lets the author edit within the allowed window. An edited
// review goes back to pending; if it had been counted, aggregates are
// recomputed without it.
func UpdateReview(reviewID, userID uuid.UUID, rating int, title, comment string) (*models.Review, error) {
	var updated *models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			return err
		}
		if review.UserID != userID {
			return ErrNotYourReview
		}
		if !review.CanEdit(time.Now()) {
			return models.ErrReviewNotEditable
		}

		wasStatus := review.Status
		review.Rating = rating
		review.Title = title
		review.Comment = comment
		review.Status = models.ReviewStatusPending
		if err := tx.Save(&review).Error; err != nil {
			return err
		}
		if AggregatesAffected(wasStatus, review.Status) {
			if err := recomputeAggregates(tx, review.ReviewableType, review.ReviewableID); err != nil {
				return err
			}
		}
		updated = &review
		return nil
	})
	return updated, err
}

// ModerateReview applies approve, reject or hide. Approving or hiding
// changes what counts toward the aggregate, so both recompute; rejecting a
// pending review never contributed and leaves aggregates alone.
func ModerateReview(reviewID uuid.UUID, action string) (*models.Review, error) {
	var moderated *models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			return err
		}

		wasStatus := review.Status
		switch action {
		case "approve":
			review.Status = models.ReviewStatusApproved
		case "reject":
			review.Status = models.ReviewStatusRejected
		case "hide":
			review.Status = models.ReviewStatusHidden
		default:
			return ErrUnknownModeration
		}
		now := time.Now()
		review.ModeratedAt = &now
		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		if AggregatesAffected(wasStatus, review.Status) {
			if err := recomputeAggregates(tx, review.ReviewableType, review.ReviewableID); err != nil {
				return err
			}
		}
		moderated = &review
		return nil
	})
	return moderated, err
}

func VoteReview(reviewID uuid.UUID, helpful bool) error {
	column := "helpful_count"
	if !helpful {
		column = "not_helpful_count"
	}
	result := database.DB.Model(&models.Review{}).Where("id = ?", reviewID).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func reviewableExists(db *gorm.DB, kind string, id uuid.UUID) error {
	var count int64
	var err error
	switch kind {
	case models.ReviewableTour:
		err = db.Model(&models.Tour{}).Where("id = ?", id).Count(&count).Error
	case models.ReviewableAttraction:
		err = db.Model(&models.Attraction{}).Where("id = ?", id).Count(&count).Error
	case models.ReviewableDepartment:
		err = db.Model(&models.Department{}).Where("id = ?", id).Count(&count).Error
	default:
		return ErrUnknownReviewable
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrReviewableNotFound
	}
	return nil
}

// AggregatesAffected reports whether a status change alters what counts
// toward the reviewable's rating. Only approved reviews contribute, so a
// change touches the aggregate when it enters or leaves that set. Rejecting
// a pending review never contributed and changes nothing.
func AggregatesAffected(oldStatus, newStatus string) bool {
	return oldStatus == models.ReviewStatusApproved || newStatus == models.ReviewStatusApproved
}

// AggregateRating returns the mean rating (two decimals) and count over the
// given approved ratings. An empty set yields 0.00 and 0.
func AggregateRating(ratings []int) (float64, int64) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return utils.Round2(float64(sum) / float64(len(ratings))), int64(len(ratings))
}

// recomputeAggregates rewrites the reviewable's rating and approved-review
// count inside the caller's transaction.
func recomputeAggregates(tx *gorm.DB, kind string, id uuid.UUID) error {
	var ratings []int
	err := tx.Model(&models.Review{}).
		Where("reviewable_type = ? AND reviewable_id = ? AND status = ?", kind, id, models.ReviewStatusApproved).
		Pluck("rating", &ratings).Error
	if err != nil {
		return err
	}

	rating, count := AggregateRating(ratings)
	updates := map[string]interface{}{
		"rating":        rating,
		"reviews_count": count,
	}
	switch kind {
	case models.ReviewableTour:
		return tx.Model(&models.Tour{}).Where("id = ?", id).Updates(updates).Error
	case models.ReviewableAttraction:
		return tx.Model(&models.Attraction{}).Where("id = ?", id).Updates(updates).Error
	case models.ReviewableDepartment:
		return tx.Model(&models.Department{}).Where("id = ?", id).Updates(updates).Error
	}
	return ErrUnknownReviewable
}
