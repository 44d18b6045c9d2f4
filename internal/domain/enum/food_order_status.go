package enum

// FoodOrderStatus is the kitchen lifecycle of a room-service order.
// Only delivered orders are billable at checkout.
type FoodOrderStatus string

const (
	FoodOrderStatusPending   FoodOrderStatus = "pending"
	FoodOrderStatusPreparing FoodOrderStatus = "preparing"
	FoodOrderStatusDelivered FoodOrderStatus = "delivered"
	FoodOrderStatusCancelled FoodOrderStatus = "cancelled"
)

// Billable reports whether the order counts toward the room bill.
func (s FoodOrderStatus) Billable() bool {
	return s == FoodOrderStatusDelivered
}
