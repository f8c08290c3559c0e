package queue

import "time"

const (
	QueueBookingConfirmed = "booking.confirmed"
	QueueBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking queues for downstream
// consumers (accounting, partner notifications).
type BookingEvent struct {
	BookingID         string    `json:"booking_id"`
	BookingNumber     string    `json:"booking_number"`
	UserID            string    `json:"user_id"`
	TourScheduleID    string    `json:"tour_schedule_id"`
	ParticipantsCount int       `json:"participants_count"`
	TotalAmount       float64   `json:"total_amount"`
	Status            string    `json:"status"`
	OccurredAt        time.Time `json:"occurred_at"`
}
