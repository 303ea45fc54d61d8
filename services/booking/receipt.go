package booking

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"tourbook/models"
	"tourbook/utils"

	"github.com/phpdave11/gofpdf"
)

// Receipt renders a booking as a PDF document.
func (s *DefaultBookingService) Receipt(ctx context.Context, actor models.Actor, bookingID string) ([]byte, error) {
	view, err := s.GetBooking(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	data, err := renderReceipt(*view)
	if err != nil {
		return nil, utils.Internal("failed to render receipt", err)
	}
	return data, nil
}

func renderReceipt(v models.BookingView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking "+v.ID, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Booking Receipt")
	pdf.Ln(12)

	title := v.PackageID
	if v.Package != nil {
		title = v.Package.Title
	}
	currency := strings.ToUpper(v.Currency)

	rows := [][2]string{
		{"Booking ID", v.ID},
		{"Package", title},
		{"Starting date", v.StartingDate.Format(utils.DateLayout)},
		{"Booked at", v.BookedAt.Format("2006-01-02 15:04")},
		{"Contact email", v.ContactEmail},
		{"Contact phone", v.ContactPhone},
		{"Payment plan", string(v.PaymentType)},
		{"Amount", fmt.Sprintf("%s %.2f", currency, v.Amount)},
		{"Total amount", fmt.Sprintf("%s %.2f", currency, v.TotalAmount)},
		{"Paid amount", fmt.Sprintf("%s %.2f", currency, v.PaidAmount)},
		{"Status", string(v.PaymentStatus)},
		{"Gateway order", v.GatewayOrderID},
		{"Gateway payment", v.GatewayPaymentID},
	}

	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, r[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(r[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Participants (%d)", len(v.Participants)))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range v.Participants {
		line := fmt.Sprintf("%d. %s, %s", i+1, p.Name, p.Gender)
		if p.Age != nil {
			line += fmt.Sprintf(", %d", *p.Age)
		}
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
