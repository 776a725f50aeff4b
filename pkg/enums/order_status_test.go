package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusPending, OrderStatus("bogus"), false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	status, err := ParseOrderStatus("processing")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if status != OrderStatusProcessing {
		t.Fatalf("unexpected status %q", status)
	}

	if _, err := ParseOrderStatus("refunded"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseProductSize(t *testing.T) {
	t.Parallel()

	size, err := ParseProductSize("34")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if size != Size34 || size.Display() != "34" {
		t.Fatalf("unexpected size %q", size)
	}

	letter, err := ParseProductSize("XL")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if letter.Display() != "XLarge" {
		t.Fatalf("unexpected display %q", letter.Display())
	}

	if _, err := ParseProductSize("XXS"); err == nil {
		t.Fatal("expected error for unknown size")
	}
}
