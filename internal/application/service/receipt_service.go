package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/email"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/pdf"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/printer"
)

// ReceiptService renders guest bills. Every rendering (JSON, thermal
// print, PDF, email) goes through the same Receipt value object built from
// the persisted Billing row, so all outputs always agree with the
// confirmed charge.
type ReceiptService struct {
	billingRepo    domainRepo.BillingRepository
	foodOrderRepo  domainRepo.FoodOrderRepository
	restaurantRepo domainRepo.RestaurantRepository
	printer        printer.Printer
	emailSvc       *email.EmailService
	printerType    string
	paperWidth     int
}

// NewReceiptService creates a new receipt service. emailSvc may be nil when
// SMTP is not configured.
func NewReceiptService(
	billingRepo domainRepo.BillingRepository,
	foodOrderRepo domainRepo.FoodOrderRepository,
	restaurantRepo domainRepo.RestaurantRepository,
	p printer.Printer,
	emailSvc *email.EmailService,
	printerType string,
	paperWidth int,
) *ReceiptService {
	if paperWidth <= 0 {
		paperWidth = printer.Width58mm
	}
	return &ReceiptService{
		billingRepo:    billingRepo,
		foodOrderRepo:  foodOrderRepo,
		restaurantRepo: restaurantRepo,
		printer:        p,
		emailSvc:       emailSvc,
		printerType:    printerType,
		paperWidth:     paperWidth,
	}
}

// BuildReceipt composes the Receipt value object from a persisted billing
// record and the food orders folded into it. Pure: no I/O, inputs
// untouched, same inputs give the same receipt. The billing row's stored
// FoodOrdersTotal stays authoritative for the subtotal; the food order
// line items are itemization only.
func BuildReceipt(billing *entity.Billing, foodOrders []entity.FoodOrder, restaurant *entity.Restaurant) *entity.Receipt {
	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: restaurant.Name,
			Address:        restaurant.Address,
			Phone:          restaurant.Phone,
			GSTIN:          restaurant.GSTIN,
		},
		BillNo:        billing.BillNo,
		Date:          billing.CheckoutAt.Format("2006-01-02 15:04"),
		GuestName:     billing.GuestName,
		GuestPhone:    billing.GuestPhone,
		RoomNumber:    billing.Room.Number,
		CheckinDate:   billing.CheckinAt.Format("2006-01-02"),
		CheckoutDate:  billing.CheckoutAt.Format("2006-01-02"),
		DaysStayed:    billing.DaysStayed,
		SubTotal:      float64(billing.Subtotal) / 100,
		Discount:      float64(billing.TotalDiscount) / 100,
		ServiceCharge: float64(billing.ServiceCharge) / 100,
		NetTotal:      float64(billing.GrandTotal) / 100,
		PaymentMethod: billing.PaymentMethod,
		Currency:      restaurant.Currency,
		FooterNote:    "Thank you for staying with us!",
	}

	// tax splits into equal CGST/SGST halves; the odd paise goes to SGST
	// so the halves always sum back to the tax amount
	cgst := billing.TaxAmount / 2
	sgst := billing.TaxAmount - cgst
	r.CGST = float64(cgst) / 100
	r.SGST = float64(sgst) / 100

	r.Items = append(r.Items, entity.ReceiptItem{
		Name:      "Room Charges",
		Quantity:  billing.DaysStayed,
		UnitPrice: float64(billing.RoomRate) / 100,
		Total:     float64(billing.RoomCharges) / 100,
	})
	// One row per food-order line item. Bills persisted before orders
	// carried a billing stamp have no retrievable lines; those fall back
	// to a single summary row.
	itemized := false
	for _, order := range foodOrders {
		for _, item := range order.Items {
			itemized = true
			r.Items = append(r.Items, entity.ReceiptItem{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: float64(item.UnitPrice) / 100,
				Total:     float64(item.Total) / 100,
			})
		}
	}
	if !itemized && billing.FoodOrdersTotal > 0 {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:     "Food Orders",
			Quantity: 1,
			Total:    float64(billing.FoodOrdersTotal) / 100,
		})
	}
	if billing.POSOrdersTotal > 0 {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:     "Restaurant (POS)",
			Quantity: 1,
			Total:    float64(billing.POSOrdersTotal) / 100,
		})
	}
	for _, c := range billing.Charges {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:     c.Name,
			Quantity: 1,
			Total:    float64(c.Amount) / 100,
		})
	}

	return r
}

func (s *ReceiptService) receiptFor(ctx context.Context, billingID uuid.UUID) (*entity.Receipt, error) {
	billing, err := s.billingRepo.GetByID(ctx, billingID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	restaurant, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}
	foodOrders, err := s.foodOrderRepo.ListByBilling(ctx, billing.ID)
	if err != nil {
		return nil, err
	}
	return BuildReceipt(billing, foodOrders, restaurant), nil
}

// GetReceipt returns the receipt for a billing record.
func (s *ReceiptService) GetReceipt(ctx context.Context, billingID uuid.UUID) (*entity.Receipt, error) {
	return s.receiptFor(ctx, billingID)
}

// PrintReceipt renders the receipt to ESC/POS and sends it to the
// configured printer. The receipt is returned either way so the handler
// can show it when printing is disabled.
func (s *ReceiptService) PrintReceipt(ctx context.Context, billingID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptFor(ctx, billingID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt, s.paperWidth)
	if err := s.printer.Print(data); err != nil {
		logrus.WithError(err).WithField("bill_no", receipt.BillNo).Error("receipt print failed")
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// RenderPDF renders the receipt as a PDF document and returns the bytes
// with a suggested filename.
func (s *ReceiptService) RenderPDF(ctx context.Context, billingID uuid.UUID) ([]byte, string, error) {
	receipt, err := s.receiptFor(ctx, billingID)
	if err != nil {
		return nil, "", err
	}
	return pdf.RenderReceipt(receipt)
}

// EmailReceipt sends the receipt PDF to the given address.
func (s *ReceiptService) EmailReceipt(ctx context.Context, billingID uuid.UUID, toEmail string) (*entity.Receipt, error) {
	if s.emailSvc == nil {
		return nil, apperror.NewBadRequestError("Email is not configured")
	}
	receipt, err := s.receiptFor(ctx, billingID)
	if err != nil {
		return nil, err
	}
	pdfData, pdfName, err := pdf.RenderReceipt(receipt)
	if err != nil {
		return nil, err
	}
	if err := s.emailSvc.SendReceipt(toEmail, receipt, pdfData, pdfName); err != nil {
		logrus.WithError(err).WithField("bill_no", receipt.BillNo).Error("receipt email failed")
		return nil, apperror.NewBadGatewayError("Failed to send receipt email")
	}
	return receipt, nil
}

// TestPrint sends a sample receipt to the printer.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: "PRINTER TEST",
			Address:        "Test Address",
			Phone:          "+91 00000 00000",
		},
		BillNo: "TEST-001",
		Date:   "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		NetTotal: 20.00,
		Currency: "INR",
	}

	data := FormatReceipt(receipt, s.paperWidth)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// Status reports printer configuration and connectivity.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.RestaurantName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Stay info
	doc.KeyValue("Bill No:", r.BillNo).
		KeyValue("Date:", r.Date)

	if r.GuestName != "" {
		doc.KeyValue("Guest:", r.GuestName)
	}
	if r.RoomNumber != "" {
		doc.KeyValue("Room:", r.RoomNumber)
	}
	if r.CheckinDate != "" {
		doc.KeyValue("Check-in:", r.CheckinDate)
	}
	if r.CheckoutDate != "" {
		doc.KeyValue("Check-out:", r.CheckoutDate)
	}
	if r.DaysStayed > 0 {
		doc.KeyValue("Days:", fmt.Sprintf("%d", r.DaysStayed))
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 && item.UnitPrice > 0 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	if r.ServiceCharge > 0 {
		doc.KeyValue("Service Charge:", fmt.Sprintf("%.2f", r.ServiceCharge))
	}
	if r.CGST > 0 {
		doc.KeyValue("CGST:", fmt.Sprintf("%.2f", r.CGST))
	}
	if r.SGST > 0 {
		doc.KeyValue("SGST:", fmt.Sprintf("%.2f", r.SGST))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.NetTotal)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	if r.FooterNote != "" {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text(r.FooterNote).
			LineFeed().
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
