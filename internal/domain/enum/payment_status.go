package enum

// PaymentStatus tracks how an order or bill has been settled.
// Stored as its display string since the POS front-end filters on the
// literal "Pending - Room Charge" sentinel.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	// PaymentStatusPendingRoomCharge marks a POS order that is not paid at the
	// till but earmarked to be folded into the guest's room bill at checkout.
	PaymentStatusPendingRoomCharge PaymentStatus = "Pending - Room Charge"
)

// BilledToRoom reports whether the order should be swept into a room bill.
func (s PaymentStatus) BilledToRoom() bool {
	return s == PaymentStatusPendingRoomCharge
}
