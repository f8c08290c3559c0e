package services

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	config "github.com/pachatour/pacha_tour/configs"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/utils"
	"gorm.io/gorm"
)

// DefaultCommissionRate applies when neither the tour nor the environment
// provides one.
const DefaultCommissionRate = 10.00

// ResolveCommissionRate picks the rate at booking creation time: the tour's
// own override wins, then PLATFORM_COMMISSION_RATE, then the default. The
// resolved rate is stored on the booking so later changes never rewrite
// existing amounts.
func ResolveCommissionRate(tour *models.Tour) float64 {
	if tour != nil && tour.CommissionRate > 0 {
		return tour.CommissionRate
	}
	if raw := config.Config("PLATFORM_COMMISSION_RATE"); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate > 0 {
			return rate
		}
	}
	return DefaultCommissionRate
}

// CommissionAmount rounds once, on the full total, never per participant.
func CommissionAmount(totalAmount, rate float64) float64 {
	return utils.Round2(totalAmount * rate / 100)
}

// CreateCommissionForBooking derives the commission row when a booking is
// paid, reusing the rate and amount frozen on the booking.
func CreateCommissionForBooking(tx *gorm.DB, booking *models.Booking, tourID uuid.UUID) error {
	paidAt := time.Now()
	if booking.PaidAt != nil {
		paidAt = *booking.PaidAt
	}

	commission := models.Commission{
		BookingID:   booking.ID,
		TourID:      tourID,
		Rate:        booking.CommissionRate,
		Amount:      booking.CommissionAmount,
		Status:      models.CommissionStatusPending,
		PeriodMonth: int(paidAt.Month()),
		PeriodYear:  paidAt.Year(),
	}
	return tx.Create(&commission).Error
}

func MarkCommissionPaid(commissionID uuid.UUID) (*models.Commission, error) {
	var commission models.Commission
	if err := database.DB.First(&commission, "id = ?", commissionID).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	commission.Status = models.CommissionStatusPaid
	commission.PaidAt = &now
	if err := database.DB.Save(&commission).Error; err != nil {
		return nil, err
	}
	return &commission, nil
}

type CommissionPeriodSummary struct {
	PeriodYear  int     `json:"period_year"`
	PeriodMonth int     `json:"period_month"`
	Total       float64 `json:"total"`
	Count       int64   `json:"count"`
}

func MonthlyCommissionSummary(year int) ([]CommissionPeriodSummary, error) {
	var rows []CommissionPeriodSummary
	err := database.DB.Model(&models.Commission{}).
		Select("period_year, period_month, sum(amount) as total, count(*) as count").
		Where("period_year = ?", year).
		Group("period_year, period_month").
		Order("period_month").
		Scan(&rows).Error
	return rows, err
}
