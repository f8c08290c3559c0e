package jobs

import (
	"log"
	"time"

	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/services"
)

// SweepFinishedSchedules marks schedules whose departure day has passed as
// completed, rolls their paid bookings over to completed and flags confirmed
// ones that never paid as no-shows.
func SweepFinishedSchedules() {
	log.Println("Running job: SweepFinishedSchedules...")

	now := time.Now()
	cutoff := now.Truncate(24 * time.Hour)

	var dueSchedules []models.TourSchedule
	err := database.DB.
		Where("status IN ? AND date < ?", []string{models.ScheduleStatusAvailable, models.ScheduleStatusFull}, cutoff).
		Find(&dueSchedules).Error
	if err != nil {
		log.Printf("Error loading finished schedules: %v", err)
		return
	}
	if len(dueSchedules) == 0 {
		log.Println("No finished schedules to sweep.")
		return
	}

	completed := 0
	for _, schedule := range dueSchedules {
		if _, err := services.CompleteSchedule(schedule.ID, now); err != nil {
			log.Printf("Error completing schedule %s: %v", schedule.ID, err)
			continue
		}
		completed++

		var heldBookings []models.Booking
		database.DB.
			Where("tour_schedule_id = ? AND status IN ?", schedule.ID, []string{models.BookingStatusConfirmed, models.BookingStatusPaid}).
			Find(&heldBookings)
		for _, booking := range heldBookings {
			if booking.Status == models.BookingStatusPaid {
				if _, err := services.CompleteBooking(booking.ID); err != nil {
					log.Printf("Error completing booking %s: %v", booking.BookingNumber, err)
				}
				continue
			}
			if _, err := services.MarkBookingNoShow(booking.ID); err != nil {
				log.Printf("Error marking booking %s as no-show: %v", booking.BookingNumber, err)
			}
		}
	}

	log.Printf("Marked %d schedule(s) as completed.", completed)
}
