package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pachatour/pacha_tour/handlers"
	"github.com/pachatour/pacha_tour/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
	admin.Get("/ws/bookings", handlers.WebsocketUpgrade, handlers.AdminBookingFeed)

	departments := admin.Group("/departments")
	departments.Post("", handlers.CreateDepartment)
	departments.Put("/:departmentId", handlers.UpdateDepartment)
	departments.Delete("/:departmentId", handlers.DeleteDepartment)

	attractions := admin.Group("/attractions")
	attractions.Post("", handlers.CreateAttraction)
	attractions.Put("/:attractionId", handlers.UpdateAttraction)
	attractions.Delete("/:attractionId", handlers.DeleteAttraction)

	tours := admin.Group("/tours")
	tours.Post("", handlers.CreateTour)
	tours.Put("/:tourId", handlers.UpdateTour)
	tours.Delete("/:tourId", handlers.DeleteTour)

	schedules := admin.Group("/schedules")
	schedules.Post("", handlers.CreateSchedule)
	schedules.Post("/bulk", handlers.BulkCreateSchedules)
	schedules.Put("/:scheduleId/capacity", handlers.UpdateScheduleCapacity)
	schedules.Post("/:scheduleId/cancel", handlers.CancelSchedule)
	schedules.Post("/:scheduleId/complete", handlers.CompleteSchedule)

	bookings := admin.Group("/bookings")
	bookings.Get("", handlers.AdminGetAllBookings)
	bookings.Post("/:bookingId/refund", handlers.RefundBooking)
	bookings.Post("/:bookingId/complete", handlers.CompleteBooking)
	bookings.Post("/:bookingId/no-show", handlers.MarkBookingNoShow)

	admin.Get("/planned-visits", handlers.AdminGetPlannedVisits)

	reviews := admin.Group("/reviews")
	reviews.Get("", handlers.AdminGetReviews)
	reviews.Put("/:reviewId/moderate", handlers.ModerateReview)

	commissions := admin.Group("/commissions")
	commissions.Get("/summary", handlers.GetCommissionSummary)
	commissions.Put("/:commissionId/pay", handlers.MarkCommissionPaid)

	reports := admin.Group("/reports")
	reports.Get("/commissions", handlers.GenerateCommissionReport)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Put("/:userId/role", handlers.UpdateUserRole)
}
