package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/services"
	"gorm.io/gorm"
)

type TourLegRequest struct {
	AttractionID string `json:"attraction_id" validate:"required,uuid"`
	VisitOrder   int    `json:"visit_order" validate:"required,min=1"`
	StayMinutes  int    `json:"stay_minutes" validate:"min=0"`
}

type TourRequest struct {
	Name            string  `json:"name" validate:"required,min=3"`
	Slug            string  `json:"slug" validate:"required,min=3"`
	Description     string  `json:"description"`
	Type            string  `json:"type" validate:"required,oneof=cultural adventure gastronomic nature mystic"`
	Difficulty      string  `json:"difficulty" validate:"required,oneof=easy moderate hard"`
	DurationHours   int     `json:"duration_hours" validate:"required,min=1"`
	PricePerPerson  float64 `json:"price_per_person" validate:"required,gt=0"`
	MinParticipants int     `json:"min_participants" validate:"required,min=1"`
	MaxParticipants int     `json:"max_participants" validate:"required,gtefield=MinParticipants"`
	CommissionRate  float64 `json:"commission_rate" validate:"min=0,max=100"`
	IsActive        *bool   `json:"is_active,omitempty"`
	IsFeatured      *bool   `json:"is_featured,omitempty"`

	Attractions []TourLegRequest `json:"attractions" validate:"required,min=1,dive"`
}

const tourCachePrefix = "catalog:tours"

func ListTours(c *fiber.Ctx) error {
	cacheKey := tourCachePrefix + ":" + c.OriginalURL()

	var tours []models.Tour
	if services.CacheGetJSON(c.Context(), cacheKey, &tours) {
		return c.JSON(tours)
	}

	query := database.DB.Where("is_active = ?", true).Order("is_featured desc, rating desc")
	if tourType := c.Query("type"); tourType != "" {
		query = query.Where("type = ?", tourType)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	if err := query.Find(&tours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	services.CacheSetJSON(c.Context(), cacheKey, tours)
	return c.JSON(tours)
}

func GetTour(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var tour models.Tour
	if err := database.DB.Where("slug = ?", slug).First(&tour).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}

	// Legs come back in visit order, not join-table order.
	var legs []models.TourAttraction
	database.DB.Preload("Attraction").Where("tour_id = ?", tour.ID).Order("visit_order").Find(&legs)

	return c.JSON(fiber.Map{"tour": tour, "itinerary": legs})
}

func CreateTour(c *fiber.Ctx) error {
	var req TourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var tour models.Tour
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		tour = models.Tour{
			Name:            req.Name,
			Slug:            req.Slug,
			Description:     req.Description,
			Type:            req.Type,
			Difficulty:      req.Difficulty,
			DurationHours:   req.DurationHours,
			PricePerPerson:  req.PricePerPerson,
			MinParticipants: req.MinParticipants,
			MaxParticipants: req.MaxParticipants,
			CommissionRate:  req.CommissionRate,
		}
		if req.IsActive != nil {
			tour.IsActive = *req.IsActive
		} else {
			tour.IsActive = true
		}
		if req.IsFeatured != nil {
			tour.IsFeatured = *req.IsFeatured
		}
		if err := tx.Create(&tour).Error; err != nil {
			return err
		}
		return replaceTourLegs(tx, tour.ID, req.Attractions)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	services.CacheInvalidate(c.Context(), tourCachePrefix)
	return c.Status(fiber.StatusCreated).JSON(tour)
}

func UpdateTour(c *fiber.Ctx) error {
	tourID := c.Params("tourId")

	var tour models.Tour
	if err := database.DB.First(&tour, "id = ?", tourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}

	var req TourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		tour.Name = req.Name
		tour.Slug = req.Slug
		tour.Description = req.Description
		tour.Type = req.Type
		tour.Difficulty = req.Difficulty
		tour.DurationHours = req.DurationHours
		tour.PricePerPerson = req.PricePerPerson
		tour.MinParticipants = req.MinParticipants
		tour.MaxParticipants = req.MaxParticipants
		tour.CommissionRate = req.CommissionRate
		if req.IsActive != nil {
			tour.IsActive = *req.IsActive
		}
		if req.IsFeatured != nil {
			tour.IsFeatured = *req.IsFeatured
		}
		if err := tx.Save(&tour).Error; err != nil {
			return err
		}
		if err := tx.Where("tour_id = ?", tour.ID).Delete(&models.TourAttraction{}).Error; err != nil {
			return err
		}
		return replaceTourLegs(tx, tour.ID, req.Attractions)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	services.CacheInvalidate(c.Context(), tourCachePrefix)
	return c.JSON(tour)
}

// DeleteTour deactivates instead of deleting once schedules exist.
func DeleteTour(c *fiber.Ctx) error {
	tourID := c.Params("tourId")

	var tour models.Tour
	if err := database.DB.First(&tour, "id = ?", tourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}

	var schedules int64
	database.DB.Model(&models.TourSchedule{}).Where("tour_id = ?", tourID).Count(&schedules)
	if schedules > 0 {
		tour.IsActive = false
		database.DB.Save(&tour)
		services.CacheInvalidate(c.Context(), tourCachePrefix)
		return c.JSON(fiber.Map{"message": "Tour has schedules; it was deactivated instead of deleted", "tour": tour})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", tourID).Delete(&models.TourAttraction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tour{}, "id = ?", tourID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tour"})
	}

	services.CacheInvalidate(c.Context(), tourCachePrefix)
	return c.SendStatus(fiber.StatusNoContent)
}

func replaceTourLegs(tx *gorm.DB, tourID uuid.UUID, legs []TourLegRequest) error {
	for _, leg := range legs {
		attractionID, err := uuid.Parse(leg.AttractionID)
		if err != nil {
			return err
		}
		stay := leg.StayMinutes
		if stay == 0 {
			stay = 60
		}
		record := models.TourAttraction{
			TourID:       tourID,
			AttractionID: attractionID,
			VisitOrder:   leg.VisitOrder,
			StayMinutes:  stay,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}
