package feed

import (
	"context"
	"reflect"
)

// Publisher notifies attached subscribers about new values of T.
type Publisher[T any] interface {
	Attach(s Subscriber[T]) error
	Detach(s Subscriber[T]) error
	Notify(ctx context.Context) error
	// Update returns the most recent value.
	Update() (T, error)
}

// Subscriber receives notifications from publishers and pulls the new value.
type Subscriber[T any] interface {
	Receive(ctx context.Context, p Publisher[T]) error
}

// Identity is implemented by publishers and subscribers that carry a user ID.
// It is used to refuse self-subscriptions.
type Identity interface {
	ID() string
}

func sameIdentity(a string, v any) bool {
	id, ok := v.(Identity)
	return ok && id.ID() == a
}

func sameSubscriber[T any](a, b Subscriber[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() && va.Comparable() && vb.Comparable() {
		return a == b
	}
	ia, ok := a.(Identity)
	return ok && sameIdentity(ia.ID(), b)
}
