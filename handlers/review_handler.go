package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/services"
)

type ReviewRequest struct {
	ReviewableType string  `json:"reviewable_type" validate:"required,oneof=tour attraction department"`
	ReviewableID   string  `json:"reviewable_id" validate:"required,uuid"`
	BookingID      *string `json:"booking_id,omitempty" validate:"omitempty,uuid"`
	Rating         int     `json:"rating" validate:"required,min=1,max=5"`
	Title          string  `json:"title" validate:"max=150"`
	Comment        string  `json:"comment"`
}

type ReviewEditRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"max=150"`
	Comment string `json:"comment"`
}

type ModerationRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject hide"`
}

type VoteRequest struct {
	Helpful *bool `json:"helpful" validate:"required"`
}

func CreateReview(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reviewableID, _ := uuid.Parse(req.ReviewableID)
	input := services.ReviewInput{
		UserID:         userID,
		ReviewableType: req.ReviewableType,
		ReviewableID:   reviewableID,
		Rating:         req.Rating,
		Title:          req.Title,
		Comment:        req.Comment,
	}
	if req.BookingID != nil {
		bookingID, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
		}
		input.BookingID = &bookingID
	}

	review, err := services.SubmitReview(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func UpdateReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req ReviewEditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.UpdateReview(reviewID, userID, req.Rating, req.Title, req.Comment)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(review)
}

// ListReviews returns approved reviews for one reviewable entity.
func ListReviews(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind != models.ReviewableTour && kind != models.ReviewableAttraction && kind != models.ReviewableDepartment {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown reviewable type"})
	}

	var reviews []models.Review
	database.DB.Preload("User").
		Where("reviewable_type = ? AND reviewable_id = ? AND status = ?", kind, c.Params("id"), models.ReviewStatusApproved).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}

func VoteReview(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.VoteReview(reviewID, *req.Helpful); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	return c.JSON(fiber.Map{"message": "Vote recorded"})
}

// Admin moderation below.

func ModerateReview(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req ModerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.ModerateReview(reviewID, req.Action)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(review)
}

func AdminGetReviews(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Order("created_at")
	status := c.Query("status", models.ReviewStatusPending)
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reviews)
}
