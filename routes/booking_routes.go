package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pachatour/pacha_tour/handlers"
	"github.com/pachatour/pacha_tour/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Post("/:bookingId/confirm", handlers.ConfirmBooking)
	booking.Post("/:bookingId/pay", handlers.PayBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)

	visits := api.Group("/planned-visits", middleware.Protected())
	visits.Get("/me", handlers.GetMyPlannedVisits)
	visits.Post("", handlers.CreatePlannedVisit)
	visits.Delete("/:visitId", handlers.DeletePlannedVisit)
}
