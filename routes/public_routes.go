package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pachatour/pacha_tour/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	departments := api.Group("/departments")
	departments.Get("", handlers.ListDepartments)
	departments.Get("/:slug", handlers.GetDepartment)

	attractions := api.Group("/attractions")
	attractions.Get("", handlers.ListAttractions)
	attractions.Get("/:slug", handlers.GetAttraction)

	tours := api.Group("/tours")
	tours.Get("", handlers.ListTours)
	tours.Get("/:slug", handlers.GetTour)
	tours.Get("/:tourId/schedules", handlers.ListTourSchedules)

	api.Get("/reviews/:kind/:id", handlers.ListReviews)
	api.Get("/media/:kind/:id", handlers.ListMedia)
}
