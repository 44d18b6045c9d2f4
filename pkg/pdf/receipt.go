// Package pdf renders guest bill receipts as narrow-format PDF documents
// suitable for download and email attachment.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

// 80mm paper with a generous length; thermal-style narrow layout.
const (
	pageWidth  = 80.0
	pageHeight = 260.0
	margin     = 5.0
)

// RenderReceipt renders a receipt into PDF bytes plus a suggested filename.
// It never mutates the receipt; identical inputs produce identical layout.
func RenderReceipt(r *entity.Receipt) ([]byte, string, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetTitle("Guest Bill "+r.BillNo, false)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	usable := pageWidth - 2*margin

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usable, 6, r.Header.RestaurantName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	if r.Header.Address != "" {
		pdf.CellFormat(usable, 3.5, r.Header.Address, "", 1, "C", false, 0, "")
	}
	if r.Header.Phone != "" {
		pdf.CellFormat(usable, 3.5, r.Header.Phone, "", 1, "C", false, 0, "")
	}
	if r.Header.GSTIN != "" {
		pdf.CellFormat(usable, 3.5, "GSTIN: "+r.Header.GSTIN, "", 1, "C", false, 0, "")
	}

	rule(pdf, usable)

	pdf.SetFont("Helvetica", "", 8)
	keyValue(pdf, usable, "Bill No", r.BillNo)
	keyValue(pdf, usable, "Date", r.Date)
	keyValue(pdf, usable, "Guest", r.GuestName)
	if r.GuestPhone != "" {
		keyValue(pdf, usable, "Phone", r.GuestPhone)
	}
	keyValue(pdf, usable, "Room", r.RoomNumber)
	keyValue(pdf, usable, "Check-in", r.CheckinDate)
	keyValue(pdf, usable, "Check-out", r.CheckoutDate)
	keyValue(pdf, usable, "Nights", fmt.Sprintf("%d", r.DaysStayed))

	rule(pdf, usable)

	for _, item := range r.Items {
		name := item.Name
		if item.Quantity > 1 {
			name = fmt.Sprintf("%dx %s", item.Quantity, name)
		}
		keyValue(pdf, usable, name, money(item.Total))
		if item.Quantity > 1 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.CellFormat(usable, 3.5, fmt.Sprintf("  @ %s each", money(item.UnitPrice)), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 8)
		}
	}

	rule(pdf, usable)

	keyValue(pdf, usable, "Subtotal", money(r.SubTotal))
	if r.Discount > 0 {
		keyValue(pdf, usable, "Discount", "-"+money(r.Discount))
	}
	if r.ServiceCharge > 0 {
		keyValue(pdf, usable, "Service Charge", money(r.ServiceCharge))
	}
	if r.CGST > 0 || r.SGST > 0 {
		keyValue(pdf, usable, "CGST", money(r.CGST))
		keyValue(pdf, usable, "SGST", money(r.SGST))
	}

	pdf.SetFont("Helvetica", "B", 10)
	keyValue(pdf, usable, "TOTAL "+r.Currency, money(r.NetTotal))
	pdf.SetFont("Helvetica", "", 8)

	if r.PaymentMethod != "" {
		keyValue(pdf, usable, "Payment", r.PaymentMethod)
	}

	rule(pdf, usable)

	if r.FooterNote != "" {
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(usable, 4, r.FooterNote, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf: failed to render receipt %s: %w", r.BillNo, err)
	}

	filename := fmt.Sprintf("bill-%s.pdf", safeFilenamePart(r.BillNo))
	return buf.Bytes(), filename, nil
}

func keyValue(pdf *gofpdf.Fpdf, usable float64, key, value string) {
	pdf.CellFormat(usable*0.6, 4, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable*0.4, 4, value, "", 1, "R", false, 0, "")
}

func rule(pdf *gofpdf.Fpdf, usable float64) {
	pdf.Ln(1)
	x, y := pdf.GetXY()
	pdf.Line(x, y, x+usable, y)
	pdf.Ln(1.5)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "-", ":", "-")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "receipt"
	}
	return out
}
