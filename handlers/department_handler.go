package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/services"
)

type DepartmentRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Slug        string  `json:"slug" validate:"required,min=2"`
	Description string  `json:"description"`
	Capital     string  `json:"capital"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

const departmentCachePrefix = "catalog:departments"

func ListDepartments(c *fiber.Ctx) error {
	cacheKey := departmentCachePrefix + ":" + c.OriginalURL()

	var departments []models.Department
	if services.CacheGetJSON(c.Context(), cacheKey, &departments) {
		return c.JSON(departments)
	}

	query := database.DB.Where("is_active = ?", true).Order("name")
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}
	if err := query.Find(&departments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	services.CacheSetJSON(c.Context(), cacheKey, departments)
	return c.JSON(departments)
}

func GetDepartment(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var department models.Department
	if err := database.DB.Preload("Attractions", "is_active = ?", true).Where("slug = ?", slug).First(&department).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}
	return c.JSON(department)
}

func CreateDepartment(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department := models.Department{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Capital:     req.Capital,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	}
	if err := database.DB.Create(&department).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Department with this name or slug already exists"})
	}

	services.CacheInvalidate(c.Context(), departmentCachePrefix)
	return c.Status(fiber.StatusCreated).JSON(department)
}

func UpdateDepartment(c *fiber.Ctx) error {
	departmentID := c.Params("departmentId")

	var department models.Department
	if err := database.DB.First(&department, "id = ?", departmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department.Name = req.Name
	department.Slug = req.Slug
	department.Description = req.Description
	department.Capital = req.Capital
	department.Latitude = req.Latitude
	department.Longitude = req.Longitude
	department.ImageURL = req.ImageURL
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update department"})
	}

	services.CacheInvalidate(c.Context(), departmentCachePrefix)
	return c.JSON(department)
}

// DeleteDepartment refuses to delete while attractions still reference it.
func DeleteDepartment(c *fiber.Ctx) error {
	departmentID := c.Params("departmentId")

	var attractions int64
	database.DB.Model(&models.Attraction{}).Where("department_id = ?", departmentID).Count(&attractions)
	if attractions > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Department still has attractions and cannot be deleted"})
	}

	result := database.DB.Delete(&models.Department{}, "id = ?", departmentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete department"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	services.CacheInvalidate(c.Context(), departmentCachePrefix)
	return c.SendStatus(fiber.StatusNoContent)
}
