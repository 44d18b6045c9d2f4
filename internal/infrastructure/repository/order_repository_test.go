package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestFoodOrderListByBillingPreloadsItems(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewFoodOrderRepository(gdb)

	restaurantID := uuid.New()
	billingID := uuid.New()
	orderID := uuid.New()
	ctx := WithRestaurant(context.Background(), restaurantID)

	mock.ExpectQuery(`SELECT (.+) FROM "food_orders" WHERE (.+) ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "billing_id", "total"}).
			AddRow(orderID, restaurantID, billingID, int64(50000)))
	mock.ExpectQuery(`SELECT (.+) FROM "food_order_items" WHERE "food_order_items"."food_order_id" = (.+)`).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "food_order_id", "name", "quantity", "unit_price", "total"}).
			AddRow(uuid.New(), orderID, "Paneer Tikka", 2, int64(15000), int64(30000)).
			AddRow(uuid.New(), orderID, "Masala Chai", 4, int64(5000), int64(20000)))

	orders, err := repo.ListByBilling(ctx, billingID)
	if err != nil {
		t.Fatalf("ListByBilling() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(orders))
	}
	if len(orders[0].Items) != 2 {
		t.Fatalf("line items = %d, want 2", len(orders[0].Items))
	}
	if orders[0].Items[0].Name != "Paneer Tikka" || orders[0].Items[0].Quantity != 2 {
		t.Fatalf("first line item = %+v", orders[0].Items[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFoodOrderListByBillingScopeRequired(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewFoodOrderRepository(gdb)

	// no restaurant in context: the scope must match nothing
	mock.ExpectQuery(`SELECT (.+) FROM "food_orders" WHERE (.*)1 = 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	orders, err := repo.ListByBilling(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListByBilling() error = %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no rows without a restaurant scope, got %d", len(orders))
	}
}
