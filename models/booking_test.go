package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var bookingNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func pendingBooking() *Booking {
	return &Booking{
		BookingNumber:     "PT-20260910-ABC123",
		ParticipantsCount: 2,
		PricePerPerson:    150.00,
		TotalAmount:       300.00,
		CommissionRate:    10.00,
		CommissionAmount:  30.00,
		Status:            BookingStatusPending,
		PaymentStatus:     PaymentStatusPending,
	}
}

func TestBookingLifecycleHappyPath(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, b.Confirm(bookingNow))
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.NotNil(t, b.ConfirmedAt)

	assert.NoError(t, b.MarkAsPaid("card", "ch_123", bookingNow))
	assert.Equal(t, BookingStatusPaid, b.Status)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, "card", *b.PaymentMethod)

	assert.NoError(t, b.Complete())
	assert.Equal(t, BookingStatusCompleted, b.Status)
}

func TestConfirmRequiresPending(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.Confirm(bookingNow))

	assert.ErrorIs(t, b.Confirm(bookingNow), ErrBookingNotPending)
}

func TestMarkAsPaidRequiresConfirmed(t *testing.T) {
	b := pendingBooking()

	assert.ErrorIs(t, b.MarkAsPaid("card", "ch_123", bookingNow), ErrBookingNotConfirmed)
	assert.Equal(t, BookingStatusPending, b.Status)
}

func TestHoldsSpotsOnlyWhenConfirmedOrPaid(t *testing.T) {
	b := pendingBooking()
	assert.False(t, b.HoldsSpots())

	assert.NoError(t, b.Confirm(bookingNow))
	assert.True(t, b.HoldsSpots())

	assert.NoError(t, b.MarkAsPaid("cash", "ref", bookingNow))
	assert.True(t, b.HoldsSpots())

	assert.NoError(t, b.Complete())
	assert.False(t, b.HoldsSpots())
}

func TestCancelRespectsLeadTimeWindow(t *testing.T) {
	departure := bookingNow.Add(48 * time.Hour)

	b := pendingBooking()
	assert.NoError(t, b.Cancel("change of plans", departure, bookingNow))
	assert.Equal(t, BookingStatusCancelled, b.Status)
	assert.Equal(t, "change of plans", *b.CancelReason)
}

func TestCancelTooCloseToDeparture(t *testing.T) {
	b := pendingBooking()

	departure := bookingNow.Add(23 * time.Hour)
	assert.ErrorIs(t, b.Cancel("too late", departure, bookingNow), ErrCancellationTooLate)

	// Exactly 24 hours out is still too late.
	departure = bookingNow.Add(CancellationWindow)
	assert.ErrorIs(t, b.Cancel("still too late", departure, bookingNow), ErrCancellationTooLate)
	assert.Equal(t, BookingStatusPending, b.Status)
}

func TestCancelRejectsTerminalBookings(t *testing.T) {
	departure := bookingNow.Add(72 * time.Hour)

	for _, status := range []string{BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded} {
		b := pendingBooking()
		b.Status = status
		assert.ErrorIs(t, b.Cancel("again", departure, bookingNow), ErrBookingNotCancelable)
	}
}

func TestRefundDefaultsToFullAmount(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.Confirm(bookingNow))
	assert.NoError(t, b.MarkAsPaid("card", "ch_123", bookingNow))

	assert.NoError(t, b.Refund(nil, bookingNow))
	assert.Equal(t, BookingStatusRefunded, b.Status)
	assert.Equal(t, PaymentStatusRefunded, b.PaymentStatus)
	assert.Equal(t, 300.00, *b.RefundAmount)
}

func TestPartialRefundIsCappedAtTotal(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.Confirm(bookingNow))
	assert.NoError(t, b.MarkAsPaid("card", "ch_123", bookingNow))

	tooMuch := 500.00
	assert.ErrorIs(t, b.Refund(&tooMuch, bookingNow), ErrRefundExceedsTotal)
	assert.Equal(t, BookingStatusPaid, b.Status)

	partial := 150.00
	assert.NoError(t, b.Refund(&partial, bookingNow))
	assert.Equal(t, 150.00, *b.RefundAmount)
}

func TestRefundRequiresPayment(t *testing.T) {
	b := pendingBooking()
	assert.ErrorIs(t, b.Refund(nil, bookingNow), ErrBookingNotRefundable)

	assert.NoError(t, b.Confirm(bookingNow))
	// Confirmed but never paid.
	assert.ErrorIs(t, b.Refund(nil, bookingNow), ErrBookingNotRefundable)
}

func TestCompleteAndNoShowRequireHeldSpots(t *testing.T) {
	b := pendingBooking()
	assert.ErrorIs(t, b.Complete(), ErrBookingNotCompletable)
	assert.ErrorIs(t, b.MarkNoShow(), ErrBookingNotCompletable)

	assert.NoError(t, b.Confirm(bookingNow))
	assert.NoError(t, b.MarkNoShow())
	assert.Equal(t, BookingStatusNoShow, b.Status)
}
