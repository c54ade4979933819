package notify

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handler receives published events.
type Handler func(event any)

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving events.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStateCancelled means the subscription has been
	// permanently cancelled.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription represents an active registration with a Notifier.
type Subscription struct {
	id      string
	handler Handler
	state   atomic.Int32
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// State returns the current subscription state.
func (s *Subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription can receive events.
func (s *Subscription) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

// Cancel permanently cancels the subscription. Cancelling twice is a
// no-op.
func (s *Subscription) Cancel() {
	s.state.Store(int32(SubscriptionStateCancelled))
}

// Notifier fans out events to subscribers synchronously, in subscription
// order.
type Notifier struct {
	mu   sync.RWMutex
	subs []*Subscription
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a handler and returns its Subscription. A nil
// handler returns a subscription that is already cancelled.
func (n *Notifier) Subscribe(h Handler) *Subscription {
	sub := &Subscription{
		id:      uuid.NewString(),
		handler: h,
	}
	if h == nil {
		sub.Cancel()
		return sub
	}

	n.mu.Lock()
	n.subs = append(n.subs, sub)
	n.mu.Unlock()
	return sub
}

// Publish delivers event to every active subscription. Cancelled
// subscriptions are pruned as they are encountered.
func (n *Notifier) Publish(event any) {
	n.mu.Lock()
	active := n.subs[:0]
	for _, sub := range n.subs {
		if sub.IsActive() {
			active = append(active, sub)
		}
	}
	n.subs = active
	targets := make([]*Subscription, len(active))
	copy(targets, active)
	n.mu.Unlock()

	for _, sub := range targets {
		if sub.IsActive() {
			sub.handler(event)
		}
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, sub := range n.subs {
		if sub.IsActive() {
			count++
		}
	}
	return count
}
