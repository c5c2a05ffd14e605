// Package feed implements the Observer pattern as a small fitness-tracking
// activity feed.
//
// Publisher and Subscriber are generic over the update type. User is both:
// it publishes the activities it records and subscribes to the activities of
// other users. When a user registers an activity, every attached subscriber
// is notified and pulls the update from the publisher.
//
//	calle := feed.NewUser("calle")
//	johan := feed.NewUser("johan")
//	_ = calle.Attach(johan)
//
//	rec, _ := feed.NewRecording(feed.SportWalk, start, end, track)
//	_ = calle.RegisterActivity(ctx, rec) // johan's feed now holds rec
//
// A user cannot subscribe to itself, and pulling an update from a user that
// never recorded anything fails with ErrEmptyFeed.
package feed
