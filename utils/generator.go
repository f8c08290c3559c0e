package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pachatour/pacha_tour/models"
	"gorm.io/gorm"
)

const bookingSuffixLength = 6
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func bookingNumberCandidate(t time.Time) string {
	b := make([]byte, bookingSuffixLength)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return fmt.Sprintf("PT-%s-%s", t.Format("20060102"), string(b))
}

// GenerateBookingNumber returns a date-prefixed booking number that does not
// collide with any stored booking, retrying on the rare collision.
func GenerateBookingNumber(tx *gorm.DB) (string, error) {
	for {
		number := bookingNumberCandidate(time.Now())

		var booking models.Booking
		err := tx.Where("booking_number = ?", number).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return number, nil
			}
			return "", err
		}
	}
}

// GenerateInvoiceNumber works the same way for invoices.
func GenerateInvoiceNumber(tx *gorm.DB) (string, error) {
	for {
		number := fmt.Sprintf("INV-%s", bookingNumberCandidate(time.Now())[3:])

		var invoice models.Invoice
		err := tx.Where("invoice_number = ?", number).First(&invoice).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return number, nil
			}
			return "", err
		}
	}
}
