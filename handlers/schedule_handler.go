package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/services"
)

type ScheduleRequest struct {
	TourID         string   `json:"tour_id" validate:"required,uuid"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string   `json:"end_time" validate:"required,datetime=15:04"`
	AvailableSpots int      `json:"available_spots" validate:"required,min=1"`
	PriceOverride  *float64 `json:"price_override,omitempty"`
	GuideID        *string  `json:"guide_id,omitempty"`
}

type BulkScheduleRequest struct {
	ScheduleRequest
	EndDate string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type CapacityRequest struct {
	AvailableSpots int `json:"available_spots" validate:"required,min=1"`
}

type CancelScheduleRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// ListTourSchedules returns bookable schedules for a tour inside an optional
// date range.
func ListTourSchedules(c *fiber.Ctx) error {
	tourID := c.Params("tourId")

	query := database.DB.Where("tour_id = ?", tourID).Order("date, start_time")
	if c.Query("all") != "true" {
		query = query.Where("status = ?", models.ScheduleStatusAvailable)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var schedules []models.TourSchedule
	if err := query.Find(&schedules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(schedules)
}

func scheduleInputFromRequest(req ScheduleRequest) (services.ScheduleInput, error) {
	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return services.ScheduleInput{}, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return services.ScheduleInput{}, err
	}
	input := services.ScheduleInput{
		TourID:         tourID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		AvailableSpots: req.AvailableSpots,
		PriceOverride:  req.PriceOverride,
	}
	if req.GuideID != nil {
		guideID, err := uuid.Parse(*req.GuideID)
		if err != nil {
			return services.ScheduleInput{}, err
		}
		input.GuideID = &guideID
	}
	return input, nil
}

func CreateSchedule(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input, err := scheduleInputFromRequest(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id or date format"})
	}

	var tour models.Tour
	if err := database.DB.First(&tour, "id = ?", input.TourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}

	schedule, err := services.CreateSchedule(input)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// BulkCreateSchedules creates one schedule per day between date and end_date.
func BulkCreateSchedules(c *fiber.Ctx) error {
	var req BulkScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input, err := scheduleInputFromRequest(req.ScheduleRequest)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id or date format"})
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || endDate.Before(input.Date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be on or after date"})
	}

	var tour models.Tour
	if err := database.DB.First(&tour, "id = ?", input.TourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}

	created, err := services.BulkCreateSchedules(input, input.Date, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": len(created), "schedules": created})
}

func UpdateScheduleCapacity(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	var req CapacityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := services.UpdateScheduleCapacity(scheduleID, req.AvailableSpots)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(schedule)
}

func CancelSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	var req CancelScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := services.CancelSchedule(scheduleID, req.Reason)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(schedule)
}

func CompleteSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	schedule, err := services.CompleteSchedule(scheduleID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(schedule)
}
