package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "PENDING"},
		{"confirmed", OrderStatusConfirmed, "CONFIRMED"},
		{"shipped", OrderStatusShipped, "SHIPPED"},
		{"delivered", OrderStatusDelivered, "DELIVERED"},
		{"cancelled", OrderStatusCancelled, "CANCELLED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus(" shipped ")
	if !ok || status != OrderStatusShipped {
		t.Fatalf("expected SHIPPED, got %q (ok=%v)", status, ok)
	}

	for _, raw := range []string{"", "LOST", "pend"} {
		if _, ok := ParseOrderStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestOrderStatusCancellable(t *testing.T) {
	expected := map[OrderStatus]bool{
		OrderStatusPending:   true,
		OrderStatusConfirmed: true,
		OrderStatusShipped:   false,
		OrderStatusDelivered: false,
		OrderStatusCancelled: true,
	}
	for _, status := range OrderStatuses {
		if got := status.Cancellable(); got != expected[status] {
			t.Errorf("status %s: expected cancellable=%v, got %v", status, expected[status], got)
		}
	}
	if OrderStatus("UNKNOWN").Cancellable() {
		t.Error("unknown status must not be cancellable")
	}
}

func TestOrderStatusNext(t *testing.T) {
	path := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered}
	for i := 0; i < len(path)-1; i++ {
		next, ok := path[i].Next()
		if !ok || next != path[i+1] {
			t.Fatalf("expected %s after %s, got %q (ok=%v)", path[i+1], path[i], next, ok)
		}
	}

	for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		if _, ok := terminal.Next(); ok {
			t.Fatalf("expected %s to have no successor", terminal)
		}
	}
}

func TestInvalidIDIsNegative(t *testing.T) {
	if InvalidID >= 0 {
		t.Fatalf("expected negative sentinel, got %d", InvalidID)
	}
}
