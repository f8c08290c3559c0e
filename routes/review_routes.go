package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pachatour/pacha_tour/handlers"
	"github.com/pachatour/pacha_tour/middleware"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews", middleware.Protected())
	reviews.Post("", handlers.CreateReview)
	reviews.Put("/:reviewId", handlers.UpdateReview)
	reviews.Post("/:reviewId/vote", handlers.VoteReview)
}
