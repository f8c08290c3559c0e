package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
)

type PlannedVisitRequest struct {
	AttractionID      string  `json:"attraction_id" validate:"required,uuid"`
	TargetDate        string  `json:"target_date" validate:"required,datetime=2006-01-02"`
	ParticipantsCount int     `json:"participants_count" validate:"required,min=1"`
	Notes             *string `json:"notes,omitempty"`
}

func CreatePlannedVisit(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req PlannedVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	attractionID, _ := uuid.Parse(req.AttractionID)
	targetDate, _ := time.Parse("2006-01-02", req.TargetDate)

	var attraction models.Attraction
	if err := database.DB.First(&attraction, "id = ?", attractionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
	}
	if targetDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Target date cannot be in the past"})
	}

	visit := models.PlannedVisit{
		UserID:            userID,
		AttractionID:      attractionID,
		TargetDate:        targetDate,
		ParticipantsCount: req.ParticipantsCount,
		Notes:             req.Notes,
	}
	if err := database.DB.Create(&visit).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create planned visit"})
	}

	return c.Status(fiber.StatusCreated).JSON(visit)
}

func GetMyPlannedVisits(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var visits []models.PlannedVisit
	database.DB.Preload("Attraction.Department").Where("user_id = ?", userID).Order("target_date").Find(&visits)

	return c.JSON(visits)
}

func DeletePlannedVisit(c *fiber.Ctx) error {
	userID := currentUserID(c)
	visitID := c.Params("visitId")

	result := database.DB.Where("id = ? AND user_id = ?", visitID, userID).Delete(&models.PlannedVisit{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete planned visit"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planned visit not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func AdminGetPlannedVisits(c *fiber.Ctx) error {
	var visits []models.PlannedVisit
	database.DB.Preload("User").Preload("Attraction").Order("target_date").Find(&visits)
	return c.JSON(visits)
}
