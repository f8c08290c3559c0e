package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/notifications"
	"github.com/pachatour/pacha_tour/queue"
	"github.com/pachatour/pacha_tour/services"
	"github.com/pachatour/pacha_tour/websocket"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	TourScheduleID    string  `json:"tour_schedule_id" validate:"required,uuid"`
	ParticipantsCount int     `json:"participants_count" validate:"required,min=1"`
	Notes             *string `json:"notes,omitempty"`
}

type PayBookingRequest struct {
	Method    string `json:"method" validate:"required,oneof=card transfer cash"`
	Reference string `json:"reference" validate:"required,min=4"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type RefundBookingRequest struct {
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Reason string   `json:"reason"`
}

func bookingError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking or schedule not found"})
	}
	if errors.Is(err, services.ErrNotYourBooking) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func publishBookingEvent(queueName string, booking *models.Booking) {
	event := queue.BookingEvent{
		BookingID:         booking.ID.String(),
		BookingNumber:     booking.BookingNumber,
		UserID:            booking.UserID.String(),
		TourScheduleID:    booking.TourScheduleID.String(),
		ParticipantsCount: booking.ParticipantsCount,
		TotalAmount:       booking.TotalAmount,
		Status:            booking.Status,
		OccurredAt:        time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue.PublishBookingEvent(ctx, queueName, event)
}

func CreateBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	scheduleID, _ := uuid.Parse(req.TourScheduleID)

	booking, err := services.CreateBooking(userID, scheduleID, req.ParticipantsCount, req.Notes)
	if err != nil {
		return bookingError(c, err)
	}

	websocket.Push("booking.created", booking)
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func ConfirmBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.ConfirmBooking(bookingID, userID)
	if err != nil {
		return bookingError(c, err)
	}

	go publishBookingEvent(queue.QueueBookingConfirmed, booking)
	websocket.Push("booking.confirmed", booking)
	go func() {
		var user models.User
		if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err == nil {
			notifications.SendEmail(user.FullName, user.Email, "Your Booking is Confirmed!",
				"<h1>Booking Confirmed</h1><p>Your booking "+booking.BookingNumber+" is confirmed. See you at the departure point!</p>")
		}
	}()

	return c.JSON(fiber.Map{"message": "Booking confirmed and spots reserved.", "booking": booking})
}

func PayBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req PayBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.PayBooking(bookingID, userID, req.Method, req.Reference)
	if err != nil {
		return bookingError(c, err)
	}

	go services.GenerateInvoice(*booking)
	websocket.Push("booking.paid", booking)

	return c.JSON(fiber.Map{"message": "Payment recorded.", "booking": booking})
}

func CancelBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.CancelBooking(bookingID, &userID, req.Reason)
	if err != nil {
		return bookingError(c, err)
	}

	go publishBookingEvent(queue.QueueBookingCancelled, booking)
	websocket.Push("booking.cancelled", booking)

	return c.JSON(fiber.Map{"message": "Booking cancelled.", "booking": booking})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("TourSchedule.Tour").
		Where("user_id = ?", userID).
		Joins("JOIN tour_schedules on bookings.tour_schedule_id = tour_schedules.id").
		Order("tour_schedules.date desc, tour_schedules.start_time desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("TourSchedule.Tour").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	return c.JSON(booking)
}

// Admin actions below.

func RefundBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req RefundBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.RefundBooking(bookingID, req.Amount, req.Reason)
	if err != nil {
		return bookingError(c, err)
	}

	go func() {
		var user models.User
		if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err == nil {
			notifications.SendEmail(user.FullName, user.Email, "Your Booking Has Been Refunded",
				"<h1>Refund Processed</h1><p>Booking "+booking.BookingNumber+" has been refunded.</p>")
		}
	}()

	return c.JSON(fiber.Map{"message": "Booking refunded.", "booking": booking})
}

func CompleteBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CompleteBooking(bookingID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking completed.", "booking": booking})
}

func MarkBookingNoShow(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.MarkBookingNoShow(bookingID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking marked as no-show.", "booking": booking})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Preload("TourSchedule.Tour").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(bookings)
}
