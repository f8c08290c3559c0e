package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pachatour/pacha_tour/handlers"
	"github.com/pachatour/pacha_tour/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	upload := api.Group("/uploads", middleware.Protected(), middleware.GuideRequired())
	upload.Post("/signature", handlers.GenerateUploadSignature)
	upload.Post("/media", handlers.AttachMedia)
}
