package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/services"
)

type DashboardAnalyticsResponse struct {
	TotalTourists      int64            `json:"total_tourists"`
	TotalActiveTours   int64            `json:"total_active_tours"`
	TotalRevenue       float64          `json:"total_revenue"`
	TotalCommission    float64          `json:"total_commission"`
	BookingsLast30Days int64            `json:"bookings_last_30_days"`
	PendingReviews     int64            `json:"pending_reviews"`
	RecentBookings     []models.Booking `json:"recent_bookings"`
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var response DashboardAnalyticsResponse
	var totalRevenue, totalCommission float64

	database.DB.Model(&models.User{}).Where("role = ?", "tourist").Count(&response.TotalTourists)
	database.DB.Model(&models.Tour{}).Where("is_active = ?", true).Count(&response.TotalActiveTours)

	database.DB.Model(&models.Booking{}).Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&totalRevenue)
	response.TotalRevenue = totalRevenue

	database.DB.Model(&models.Commission{}).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&totalCommission)
	response.TotalCommission = totalCommission

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&models.Booking{}).Where("created_at > ?", thirtyDaysAgo).Count(&response.BookingsLast30Days)

	database.DB.Model(&models.Review{}).Where("status = ?", models.ReviewStatusPending).Count(&response.PendingReviews)

	database.DB.Order("created_at desc").Limit(5).Preload("User").Preload("TourSchedule.Tour").Find(&response.RecentBookings)

	return c.JSON(response)
}

// GenerateCommissionReport exports commissions for a period as CSV.
func GenerateCommissionReport(c *fiber.Ctx) error {
	startDateStr := c.Query("start_date", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	endDateStr := c.Query("end_date", time.Now().Format("2006-01-02"))

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format. Use YYYY-MM-DD."})
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date format. Use YYYY-MM-DD."})
	}
	endDate = endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	var commissions []models.Commission
	database.DB.
		Preload("Booking.User").
		Preload("Tour").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Order("created_at desc").
		Find(&commissions)

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"Booking Number", "Date", "Tourist", "Tour", "Booking Total", "Rate %", "Commission", "Status"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, commission := range commissions {
		row := []string{
			commission.Booking.BookingNumber,
			commission.CreatedAt.Format("2006-01-02 15:04"),
			commission.Booking.User.FullName,
			commission.Tour.Name,
			fmt.Sprintf("%.2f", commission.Booking.TotalAmount),
			fmt.Sprintf("%.2f", commission.Rate),
			fmt.Sprintf("%.2f", commission.Amount),
			commission.Status,
		}
		if err := w.Write(row); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV row"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"commissions_%s_to_%s.csv\"", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))

	return c.Send(b.Bytes())
}

func GetCommissionSummary(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	rows, err := services.MonthlyCommissionSummary(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(rows)
}

func MarkCommissionPaid(c *fiber.Ctx) error {
	commissionID, err := uuid.Parse(c.Params("commissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid commission id"})
	}

	commission, err := services.MarkCommissionPaid(commissionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Commission not found"})
	}
	return c.JSON(commission)
}

func GetAllUsers(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	return c.JSON(user)
}

type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=tourist guide admin"`
}

func UpdateUserRole(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Role = req.Role
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user role"})
	}
	return c.JSON(user)
}
