package notify

import "testing"

func TestSubscribeAndPublish(t *testing.T) {
	n := NewNotifier()

	var got []any
	sub := n.Subscribe(func(event any) {
		got = append(got, event)
	})

	n.Publish("one")
	n.Publish("two")

	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("received %v, want [one two]", got)
	}
	if !sub.IsActive() {
		t.Error("subscription not active")
	}
	if sub.ID() == "" {
		t.Error("subscription missing ID")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	n := NewNotifier()

	count := 0
	sub := n.Subscribe(func(any) { count++ })

	n.Publish(1)
	sub.Cancel()
	n.Publish(2)

	if count != 1 {
		t.Errorf("received %d events, want 1", count)
	}
	if sub.State() != SubscriptionStateCancelled {
		t.Errorf("state = %s, want cancelled", sub.State())
	}
}

func TestDeliveryOrder(t *testing.T) {
	n := NewNotifier()

	var order []int
	n.Subscribe(func(any) { order = append(order, 1) })
	n.Subscribe(func(any) { order = append(order, 2) })
	n.Subscribe(func(any) { order = append(order, 3) })

	n.Publish(struct{}{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order %v, want [1 2 3]", order)
	}
}

func TestNilHandler(t *testing.T) {
	n := NewNotifier()

	sub := n.Subscribe(nil)
	if sub.IsActive() {
		t.Error("nil-handler subscription is active")
	}

	// Must not panic.
	n.Publish("event")
}

func TestLenCountsActive(t *testing.T) {
	n := NewNotifier()

	a := n.Subscribe(func(any) {})
	n.Subscribe(func(any) {})

	if n.Len() != 2 {
		t.Errorf("Len() = %d, want 2", n.Len())
	}
	a.Cancel()
	if n.Len() != 1 {
		t.Errorf("Len() = %d after cancel, want 1", n.Len())
	}
}

func TestSubscriptionStateString(t *testing.T) {
	if SubscriptionStateActive.String() != "active" {
		t.Error("active state string mismatch")
	}
	if SubscriptionStateCancelled.String() != "cancelled" {
		t.Error("cancelled state string mismatch")
	}
}
