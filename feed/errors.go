package feed

import "errors"

var (
	// ErrSelfSubscription is returned when a user attaches itself as a subscriber.
	ErrSelfSubscription = errors.New("user cannot subscribe to own feed")

	// ErrSelfPublish is returned when a user receives an update from itself.
	ErrSelfPublish = errors.New("user cannot add own recording as subscribed content")

	// ErrEmptyFeed is returned by Update before the first activity is registered.
	ErrEmptyFeed = errors.New("feed is empty")

	// ErrNotSubscribed is returned when detaching a subscriber that is not attached.
	ErrNotSubscribed = errors.New("subscriber is not attached")

	// ErrNilSubscriber is returned when attaching a nil subscriber.
	ErrNilSubscriber = errors.New("nil subscriber")

	// ErrInvalidRecording is returned for recordings that fail validation.
	ErrInvalidRecording = errors.New("invalid recording")
)
