package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/pachatour/pacha_tour/configs"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
)

const mediaFolder = "pacha_tour_media"

// GenerateUploadSignature creates a secure signature for a frontend upload.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: mediaFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	apiKey := cld.Config.Cloud.APIKey

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   apiKey,
		"folder":    mediaFolder,
	})
}

type AttachMediaRequest struct {
	MediableType string  `json:"mediable_type" validate:"required,oneof=tour attraction department"`
	MediableID   string  `json:"mediable_id" validate:"required,uuid"`
	URL          string  `json:"url" validate:"required,url"`
	PublicID     string  `json:"public_id" validate:"required"`
	Caption      *string `json:"caption,omitempty"`
	SortOrder    int     `json:"sort_order"`
}

// AttachMedia records an already-uploaded Cloudinary asset against a catalog
// entity's gallery.
func AttachMedia(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req AttachMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	mediableID, _ := uuid.Parse(req.MediableID)

	media := models.Media{
		MediableType: req.MediableType,
		MediableID:   mediableID,
		URL:          req.URL,
		PublicID:     req.PublicID,
		Caption:      req.Caption,
		SortOrder:    req.SortOrder,
		UploadedBy:   userID,
	}
	if err := database.DB.Create(&media).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store media record"})
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

func ListMedia(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind != models.MediableTour && kind != models.MediableAttraction && kind != models.MediableDepartment {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown mediable type"})
	}

	var media []models.Media
	database.DB.Where("mediable_type = ? AND mediable_id = ?", kind, c.Params("id")).Order("sort_order").Find(&media)
	return c.JSON(media)
}
