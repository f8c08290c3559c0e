package services

import (
	"testing"

	"github.com/pachatour/pacha_tour/models"
	"github.com/stretchr/testify/assert"
)

func TestCommissionAmountRoundsHalfUp(t *testing.T) {
	// 5.00 * 2.5% = 0.125, rounds up to 0.13.
	assert.Equal(t, 0.13, CommissionAmount(5.00, 2.5))

	assert.Equal(t, 30.00, CommissionAmount(300.00, 10.00))
	assert.Equal(t, 26.25, CommissionAmount(250.00, 10.5))
	assert.Equal(t, 15.00, CommissionAmount(99.99, 15.00))
}

func TestCommissionRoundsOnceOnTheTotal(t *testing.T) {
	// Three participants at 33.33 each. Rounding per participant would give
	// 3 * 3.33 = 9.99; rounding the total gives 10.00.
	total := 3 * 33.33
	assert.Equal(t, 10.00, CommissionAmount(total, 10.00))
}

func TestResolveCommissionRateTourOverrideWins(t *testing.T) {
	tour := &models.Tour{CommissionRate: 12.50}
	assert.Equal(t, 12.50, ResolveCommissionRate(tour))
}

func TestResolveCommissionRateEnvFallback(t *testing.T) {
	t.Setenv("PLATFORM_COMMISSION_RATE", "8.75")

	tour := &models.Tour{CommissionRate: 0}
	assert.Equal(t, 8.75, ResolveCommissionRate(tour))
}

func TestResolveCommissionRateDefault(t *testing.T) {
	t.Setenv("PLATFORM_COMMISSION_RATE", "")

	assert.Equal(t, DefaultCommissionRate, ResolveCommissionRate(&models.Tour{}))
	assert.Equal(t, DefaultCommissionRate, ResolveCommissionRate(nil))
}

func TestResolveCommissionRateIgnoresGarbageEnv(t *testing.T) {
	t.Setenv("PLATFORM_COMMISSION_RATE", "not-a-number")

	assert.Equal(t, DefaultCommissionRate, ResolveCommissionRate(&models.Tour{}))
}
