package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
	ReviewStatusHidden   = "hidden"

	ReviewableTour       = "tour"
	ReviewableAttraction = "attraction"
	ReviewableDepartment = "department"
)

// ReviewEditWindow is how long after creation the author may still edit a
// review that has already been moderated.
const ReviewEditWindow = 24 * time.Hour

var (
	ErrReviewNotEditable  = errors.New("review can no longer be edited")
	ErrReviewAlreadyFinal = errors.New("review has already been moderated")
)

type Review struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null" json:"user_id"`

	ReviewableType string    `gorm:"size:20;not null;index:idx_reviewable" json:"reviewable_type"`
	ReviewableID   uuid.UUID `gorm:"not null;index:idx_reviewable" json:"reviewable_id"`

	BookingID *uuid.UUID `gorm:"unique" json:"booking_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Title   string `gorm:"size:150" json:"title"`
	Comment string `gorm:"type:text" json:"comment"`
	Status  string `gorm:"size:20;not null;default:'pending'" json:"status"`

	HelpfulCount    int `gorm:"default:0" json:"helpful_count"`
	NotHelpfulCount int `gorm:"default:0" json:"not_helpful_count"`

	ModeratedAt *time.Time `json:"moderated_at"`

	User    User     `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Booking *Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanEdit allows the author to touch a review while it is still pending, or
// within the edit window if moderation already happened.
func (r *Review) CanEdit(now time.Time) bool {
	if r.Status == ReviewStatusPending {
		return true
	}
	return now.Sub(r.CreatedAt) < ReviewEditWindow
}
