package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/pachatour/pacha_tour/configs"
	"github.com/pachatour/pacha_tour/database"
	"github.com/pachatour/pacha_tour/models"
	"github.com/pachatour/pacha_tour/utils"
)

// GenerateInvoice renders the booking invoice to PDF and stores it. Meant to
// run on a goroutine after payment; failures are logged, the booking itself
// is already paid.
func GenerateInvoice(booking models.Booking) {
	var existing models.Invoice
	if err := database.DB.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		return
	}

	var schedule models.TourSchedule
	if err := database.DB.Preload("Tour").First(&schedule, "id = ?", booking.TourScheduleID).Error; err != nil {
		log.Printf("🔥 Invoice: failed to load schedule for booking %s: %v", booking.BookingNumber, err)
		return
	}
	var user models.User
	if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err != nil {
		log.Printf("🔥 Invoice: failed to load user for booking %s: %v", booking.BookingNumber, err)
		return
	}

	invoiceNumber, err := utils.GenerateInvoiceNumber(database.DB)
	if err != nil {
		log.Printf("🔥 Invoice: failed to generate invoice number: %v", err)
		return
	}

	htmlData, err := generateInvoiceHTML(invoiceNumber, &booking, &schedule, &user)
	if err != nil {
		log.Printf("🔥 Invoice: failed to render HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Invoice: failed to generate PDF: %v", err)
		return
	}

	pdfURL, err := uploadInvoiceToCloudinary(pdfBytes, booking.BookingNumber)
	if err != nil {
		log.Printf("🔥 Invoice: failed to upload PDF: %v", err)
		return
	}

	invoice := models.Invoice{
		BookingID:     booking.ID,
		InvoiceNumber: invoiceNumber,
		Amount:        booking.TotalAmount,
		PdfURL:        pdfURL,
		IssuedAt:      time.Now(),
	}
	if err := database.DB.Create(&invoice).Error; err != nil {
		log.Printf("🔥 Invoice: failed to store invoice for booking %s: %v", booking.BookingNumber, err)
		return
	}
	log.Printf("✅ Issued invoice %s for booking %s.", invoiceNumber, booking.BookingNumber)
}

func generateInvoiceHTML(invoiceNumber string, booking *models.Booking, schedule *models.TourSchedule, user *models.User) (string, error) {
	tmpl, err := template.ParseFiles("templates/invoice.html")
	if err != nil {
		return "", err
	}

	data := struct {
		InvoiceNumber  string
		BookingNumber  string
		CustomerName   string
		TourName       string
		TourDate       string
		Participants   int
		PricePerPerson string
		TotalAmount    string
		IssuedDate     string
	}{
		InvoiceNumber:  invoiceNumber,
		BookingNumber:  booking.BookingNumber,
		CustomerName:   user.FullName,
		TourName:       schedule.Tour.Name,
		TourDate:       schedule.Date.Format("January 2, 2006") + " " + schedule.StartTime,
		Participants:   booking.ParticipantsCount,
		PricePerPerson: fmt.Sprintf("%.2f", booking.PricePerPerson),
		TotalAmount:    fmt.Sprintf("%.2f", booking.TotalAmount),
		IssuedDate:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadInvoiceToCloudinary(fileBytes []byte, bookingNumber string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("invoices/%s_%s", bookingNumber, uuid.New().String()),
		Folder:       "pacha_tour_invoices",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
