package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"gorm.io/gorm"
)

type AttractionRequest struct {
	DepartmentID string  `json:"department_id" validate:"required,uuid"`
	Name         string  `json:"name" validate:"required,min=2"`
	Slug         string  `json:"slug" validate:"required,min=2"`
	Description  string  `json:"description"`
	Type         string  `json:"type" validate:"required,oneof=natural cultural historical archaeological gastronomic adventure"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	Altitude     *int    `json:"altitude,omitempty"`
	EntryFee     float64 `json:"entry_fee" validate:"min=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func ListAttractions(c *fiber.Ctx) error {
	query := database.DB.Where("is_active = ?", true).Order("name")
	if departmentID := c.Query("department_id"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if attractionType := c.Query("type"); attractionType != "" {
		query = query.Where("type = ?", attractionType)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var attractions []models.Attraction
	if err := query.Find(&attractions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(attractions)
}

func GetAttraction(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var attraction models.Attraction
	if err := database.DB.Preload("Department").Where("slug = ?", slug).First(&attraction).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
	}

	database.DB.Model(&attraction).Update("visits_count", gorm.Expr("visits_count + 1"))

	return c.JSON(attraction)
}

func CreateAttraction(c *fiber.Ctx) error {
	var req AttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	departmentID, _ := uuid.Parse(req.DepartmentID)

	var department models.Department
	if err := database.DB.First(&department, "id = ?", departmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	attraction := models.Attraction{
		DepartmentID: departmentID,
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Type:         req.Type,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Altitude:     req.Altitude,
		EntryFee:     req.EntryFee,
	}
	if err := database.DB.Create(&attraction).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attraction with this slug already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(attraction)
}

func UpdateAttraction(c *fiber.Ctx) error {
	attractionID := c.Params("attractionId")

	var attraction models.Attraction
	if err := database.DB.First(&attraction, "id = ?", attractionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
	}

	var req AttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	departmentID, _ := uuid.Parse(req.DepartmentID)
	attraction.DepartmentID = departmentID
	attraction.Name = req.Name
	attraction.Slug = req.Slug
	attraction.Description = req.Description
	attraction.Type = req.Type
	attraction.Latitude = req.Latitude
	attraction.Longitude = req.Longitude
	attraction.Altitude = req.Altitude
	attraction.EntryFee = req.EntryFee
	if req.IsActive != nil {
		attraction.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&attraction).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update attraction"})
	}

	return c.JSON(attraction)
}

// DeleteAttraction refuses to delete while tours still visit it.
func DeleteAttraction(c *fiber.Ctx) error {
	attractionID := c.Params("attractionId")

	var legs int64
	database.DB.Model(&models.TourAttraction{}).Where("attraction_id = ?", attractionID).Count(&legs)
	if legs > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attraction is part of existing tours and cannot be deleted"})
	}

	result := database.DB.Delete(&models.Attraction{}, "id = ?", attractionID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attraction"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
