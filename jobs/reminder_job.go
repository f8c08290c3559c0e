package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/notifications"
)

// SendDepartureReminders emails tourists whose tour departs tomorrow.
func SendDepartureReminders() {
	log.Println("Running job: SendDepartureReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("User").
		Preload("TourSchedule.Tour").
		Joins("JOIN tour_schedules on bookings.tour_schedule_id = tour_schedules.id").
		Where("bookings.status IN ? AND tour_schedules.date = ?", []string{models.BookingStatusConfirmed, models.BookingStatusPaid}, tomorrow).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming departures: %v", err)
		return
	}
	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending departure reminder for booking: %s", booking.BookingNumber)

		emailSubject := "Reminder: Your Tour Departs Tomorrow!"
		emailBody := fmt.Sprintf(
			"<h1>Tour Reminder</h1><p>Hi %s,</p><p>Your tour <b>%s</b> departs tomorrow at %s. Your booking number is <b>%s</b>.</p><p>Please arrive at the meeting point 15 minutes early.</p>",
			booking.User.FullName,
			booking.TourSchedule.Tour.Name,
			booking.TourSchedule.StartTime,
			booking.BookingNumber,
		)

		go notifications.SendEmail(booking.User.FullName, booking.User.Email, emailSubject, emailBody)
	}
}
