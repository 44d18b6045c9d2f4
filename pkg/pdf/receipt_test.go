package pdf

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: "Harbor View Hotel",
			Address:        "12 Marine Drive, Mumbai",
			Phone:          "+91 98200 00000",
			GSTIN:          "27AAAAA0000A1Z5",
		},
		BillNo:       "BILL-A1B2C3D4",
		Date:         "2026-08-30 11:45",
		GuestName:    "Asha Kulkarni",
		RoomNumber:   "101",
		CheckinDate:  "2026-08-27",
		CheckoutDate: "2026-08-30",
		DaysStayed:   3,
		Items: []entity.ReceiptItem{
			{Name: "Room Charges", Quantity: 3, UnitPrice: 2000, Total: 6000},
			{Name: "Food Orders", Quantity: 1, UnitPrice: 500, Total: 500},
		},
		SubTotal:      6500,
		Discount:      650,
		ServiceCharge: 585,
		CGST:          160.65,
		SGST:          160.66,
		NetTotal:      6756.31,
		PaymentMethod: "card",
		Currency:      "INR",
		FooterNote:    "Thank you for staying with us!",
	}
}

func TestRenderReceiptProducesPDF(t *testing.T) {
	data, filename, err := RenderReceipt(sampleReceipt())
	if err != nil {
		t.Fatalf("RenderReceipt() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: % x", data[:8])
	}
	if filename != "bill-BILL-A1B2C3D4.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestRenderReceiptSanitizesFilename(t *testing.T) {
	r := sampleReceipt()
	r.BillNo = "BILL/2026 08:30"
	_, filename, err := RenderReceipt(r)
	if err != nil {
		t.Fatalf("RenderReceipt() error = %v", err)
	}
	if filename != "bill-BILL-2026-08-30.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestRenderReceiptDoesNotMutateInput(t *testing.T) {
	r := sampleReceipt()
	want := *r
	wantItems := append([]entity.ReceiptItem(nil), r.Items...)

	if _, _, err := RenderReceipt(r); err != nil {
		t.Fatalf("RenderReceipt() error = %v", err)
	}

	got := *r
	got.Items = nil
	want.Items = nil
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("receipt scalar fields changed during rendering")
	}
	for i := range wantItems {
		if r.Items[i] != wantItems[i] {
			t.Fatalf("receipt item %d changed during rendering", i)
		}
	}
}
