package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MediableTour       = "tour"
	MediableAttraction = "attraction"
	MediableDepartment = "department"
)

type Media struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	MediableType string    `gorm:"size:20;not null;index:idx_mediable" json:"mediable_type"`
	MediableID   uuid.UUID `gorm:"not null;index:idx_mediable" json:"mediable_id"`

	URL       string  `gorm:"size:255;not null" json:"url"`
	PublicID  string  `gorm:"size:150;not null" json:"public_id"`
	Caption   *string `gorm:"size:255" json:"caption"`
	SortOrder int     `gorm:"default:0" json:"sort_order"`

	UploadedBy uuid.UUID `gorm:"not null" json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
}
