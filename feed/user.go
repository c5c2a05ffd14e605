package feed

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/gopatterns"
)

// User is a member of the feed. It publishes its own recordings and
// subscribes to recordings of other users.
//
// Detach matches subscribers with ==. Subscribers whose values cannot be
// compared are matched by ID when they implement Identity.
type User struct {
	id   string
	opts options
	log  *gopatterns.Logger

	mu          sync.RWMutex
	latest      *Recording
	subscribers []Subscriber[Recording]
	timeline    *timeline
}

var (
	_ Publisher[Recording]  = (*User)(nil)
	_ Subscriber[Recording] = (*User)(nil)
)

// NewUser creates a user with the given ID.
func NewUser(id string, optFns ...Option) *User {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &User{
		id:       id,
		opts:     o,
		log:      o.logger.WithUser(id),
		timeline: newTimeline(),
	}
}

// ID returns the user ID.
func (u *User) ID() string { return u.id }

// Attach adds s to the subscribers notified on every new activity.
func (u *User) Attach(s Subscriber[Recording]) error {
	if s == nil {
		return ErrNilSubscriber
	}
	if sameIdentity(u.id, s) {
		return fmt.Errorf("%w: %s", ErrSelfSubscription, u.id)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.subscribers = append(u.subscribers, s)
	return nil
}

// Detach removes the first occurrence of s.
func (u *User) Detach(s Subscriber[Recording]) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := slices.IndexFunc(u.subscribers, func(x Subscriber[Recording]) bool { return sameSubscriber(x, s) })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotSubscribed, u.id)
	}
	u.subscribers = slices.Delete(u.subscribers, i, i+1)
	return nil
}

// Subscribers returns the number of attached subscribers.
func (u *User) Subscribers() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.subscribers)
}

// Notify delivers the latest activity to every subscriber in attach order.
// A failing subscriber does not stop delivery to the others; all failures
// are returned joined.
func (u *User) Notify(ctx context.Context) error {
	u.mu.RLock()
	subs := slices.Clone(u.subscribers)
	u.mu.RUnlock()

	start := time.Now()
	delivered := 0
	var errs []error

	for i, s := range subs {
		if u.opts.limiter != nil {
			if err := u.opts.limiter.Wait(ctx); err != nil {
				errs = append(errs, fmt.Errorf("notify subscriber %d: %w", i, err))
				break
			}
		}
		if err := s.Receive(ctx, u); err != nil {
			errs = append(errs, fmt.Errorf("notify subscriber %d: %w", i, err))
			continue
		}
		delivered++
	}

	u.opts.metrics.RecordNotify(len(subs), delivered, time.Since(start))
	return errors.Join(errs...)
}

// Update returns the latest registered activity.
func (u *User) Update() (Recording, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.latest == nil {
		return Recording{}, fmt.Errorf("%w: user %s", ErrEmptyFeed, u.id)
	}
	return *u.latest, nil
}

// RegisterActivity stores rec as the latest activity, adds it to the user's
// own feed and notifies all subscribers.
func (u *User) RegisterActivity(ctx context.Context, rec Recording) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	u.mu.Lock()
	u.latest = &rec
	u.timeline.add(rec)
	n := len(u.subscribers)
	u.mu.Unlock()

	err := u.Notify(ctx)
	u.log.LogActivity(ctx, u.id, string(rec.Sport), n, err)
	return err
}

// Receive pulls the latest activity from p into the user's feed.
func (u *User) Receive(ctx context.Context, p Publisher[Recording]) error {
	if sameIdentity(u.id, p) {
		return fmt.Errorf("%w: %s", ErrSelfPublish, u.id)
	}

	rec, err := p.Update()
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.timeline.add(rec)
	u.mu.Unlock()

	from := "unknown"
	if id, ok := p.(Identity); ok {
		from = id.ID()
	}
	u.log.InfoContext(ctx, "mate completed activity",
		"from", from,
		"sport", strings.ToLower(string(rec.Sport)),
	)
	return nil
}

// Feed returns every recording in the user's feed, own and received,
// ordered by start time.
func (u *User) Feed() []Recording {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.timeline.all()
}

// FeedSince returns the feed recordings that started at or after t.
func (u *User) FeedSince(t time.Time) []Recording {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.timeline.since(t)
}

// FeedLen returns the number of recordings in the feed.
func (u *User) FeedLen() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.timeline.len()
}
