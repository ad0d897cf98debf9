package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/luxe-next/internal/constants"
	"github.com/luxe-next/internal/models"
)

func sampleOrderInput(items ...OrderItemInput) CreateOrderInput {
	return CreateOrderInput{
		OrderInput: OrderInput{
			CustomerEmail:     strPtr("Buyer@Example.com "),
			CustomerFirstName: strPtr("Grace"),
			CustomerLastName:  strPtr("Hopper"),
			ShippingCity:      strPtr("Arlington"),
			Subtotal:          moneyPtr(6000),
			TaxAmount:         moneyPtr(480),
			ShippingCost:      moneyPtr(0),
			TotalAmount:       moneyPtr(6480),
			PaymentMethod:     strPtr("card"),
		},
		Items: items,
	}
}

func sampleItem(total float64) OrderItemInput {
	return OrderItemInput{
		DiamondSKU:      "LD-RND-00001",
		SettingSKU:      "ST-00001",
		RingSize:        "6",
		DiamondPrice:    moneyPtr(total - 1000),
		SettingPrice:    moneyPtr(1000),
		ItemTotal:       moneyPtr(total),
		ItemDescription: "Round diamond in platinum solitaire",
	}
}

func TestOrderCreateWritesHeaderAndItems(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.orderService()

	order, err := svc.Create(sampleOrderInput(sampleItem(2000), sampleItem(2500), sampleItem(1500)))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if got := env.countRows(t, &models.Order{}); got != 1 {
		t.Fatalf("orders want 1 got %d", got)
	}
	if got := env.countRows(t, &models.OrderItem{}); got != 3 {
		t.Fatalf("order items want 3 got %d", got)
	}
	if len(order.Items) != 3 {
		t.Fatalf("returned order should embed 3 items got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.OrderID != order.ID || item.Quantity != 1 {
			t.Fatalf("item should belong to order with default quantity 1: %+v", item)
		}
	}
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("default statuses should be pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if !regexp.MustCompile(`^LUX-[0-9A-F]{8}$`).MatchString(order.OrderNumber) {
		t.Fatalf("generated order number mismatch: %s", order.OrderNumber)
	}
	if order.CustomerEmail != "Buyer@Example.com" {
		t.Fatalf("customer email should be trimmed, got %q", order.CustomerEmail)
	}
}

func TestOrderCreateRollsBackOnInvalidItem(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.orderService()

	bad := sampleItem(2500)
	bad.Quantity = intPtr(0)
	_, err := svc.Create(sampleOrderInput(sampleItem(2000), bad, sampleItem(1500)))
	if !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("invalid item want ErrInvalidOrderItem got %v", err)
	}
	if got := env.countRows(t, &models.Order{}); got != 0 {
		t.Fatalf("orders should roll back, got %d", got)
	}
	if got := env.countRows(t, &models.OrderItem{}); got != 0 {
		t.Fatalf("order items should roll back, got %d", got)
	}

	missingTotal := sampleItem(2000)
	missingTotal.ItemTotal = nil
	if _, err := svc.Create(sampleOrderInput(missingTotal)); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("missing item_total want ErrInvalidOrderItem got %v", err)
	}

	dangling := sampleItem(2000)
	dangling.ConfigID = uintPtr(999)
	if _, err := svc.Create(sampleOrderInput(dangling)); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("missing configuration want ErrReferenceNotFound got %v", err)
	}
	if got := env.countRows(t, &models.Order{}); got != 0 {
		t.Fatalf("orders should stay empty after failures, got %d", got)
	}
}

func TestOrderCreateValidatesHeader(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.orderService()

	input := sampleOrderInput()
	input.CustomerEmail = nil
	if _, err := svc.Create(input); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("missing email want ErrInvalidOrder got %v", err)
	}

	input = sampleOrderInput()
	input.Status = strPtr("teleported")
	if _, err := svc.Create(input); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("bogus status want ErrOrderStatusInvalid got %v", err)
	}

	input = sampleOrderInput()
	input.OrderNumber = strPtr("LUX-FIXED001")
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("create with explicit number failed: %v", err)
	}
	if _, err := svc.Create(input); !errors.Is(err, ErrOrderNumberExists) {
		t.Fatalf("duplicate order number want ErrOrderNumberExists got %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.orderService()
	order, err := svc.Create(sampleOrderInput(sampleItem(1000)))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "bogus"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("bogus status want ErrOrderStatusInvalid got %v", err)
	}
	status, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if status != constants.OrderStatusShipped {
		t.Fatalf("status want shipped got %s", status)
	}
	reloaded, err := svc.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Status != constants.OrderStatusShipped || reloaded.ShippedAt == nil {
		t.Fatalf("shipped order should stamp shipped_at: %+v", reloaded)
	}
	if _, err := svc.UpdateStatus(order.ID+50, constants.OrderStatusDelivered); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order want ErrNotFound got %v", err)
	}
}

func TestOrderUpdateAndDelete(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.orderService()
	order, err := svc.Create(sampleOrderInput(sampleItem(1000), sampleItem(1200)))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := svc.Update(order.ID, OrderInput{
		SpecialInstructions: strPtr("gift wrap"),
		Status:              strPtr(constants.OrderStatusDelivered),
	})
	if err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if updated.SpecialInstructions != "gift wrap" || updated.DeliveredAt == nil {
		t.Fatalf("partial update mismatch: %+v", updated)
	}
	if updated.CustomerFirstName != "Grace" || len(updated.Items) != 2 {
		t.Fatalf("untouched fields should stay, got %+v", updated)
	}

	if err := svc.Delete(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if got := env.countRows(t, &models.OrderItem{}); got != 0 {
		t.Fatalf("order items should be deleted with order, got %d", got)
	}
	if err := svc.Delete(order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete want ErrNotFound got %v", err)
	}
}

func TestOrderListByUser(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.orderService()
	user := &models.User{Email: "owner@example.com", PasswordHash: "x", IsActive: true}
	if err := env.users.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	input := sampleOrderInput(sampleItem(1000))
	input.UserID = &user.ID
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("create user order failed: %v", err)
	}
	if _, err := svc.Create(sampleOrderInput(sampleItem(1000))); err != nil {
		t.Fatalf("create guest order failed: %v", err)
	}

	rows, err := svc.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("user orders want 1 got %d", len(rows))
	}

	input.UserID = uintPtr(user.ID + 100)
	if _, err := svc.Create(input); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("unknown user want ErrReferenceNotFound got %v", err)
	}
}
