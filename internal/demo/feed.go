package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/gopatterns/feed"
)

// Track is the GPS track shared by the feed scenario's recordings.
var Track = []feed.Coordinate{
	{Lat: 59.363329, Lon: 17.872139},
	{Lat: 59.36361925977473, Lon: 17.87227045888949},
	{Lat: 59.36374800255386, Lon: 17.87244817040548},
	{Lat: 59.36402006051324, Lon: 17.872563650512124},
	{Lat: 59.3641472860572, Lon: 17.872678956245146},
	{Lat: 59.364446992568425, Lon: 17.872795679290945},
	{Lat: 59.36471494807265, Lon: 17.872996993154874},
	{Lat: 59.364866428949085, Lon: 17.873137912591194},
	{Lat: 59.36516249036535, Lon: 17.8734198373526},
	{Lat: 59.365309617684225, Lon: 17.87355603326321},
}

// Feed wires Calle, Johan, Jonas and Emma together, registers a walk for
// Calle and a run for Johan and prints every user's feed.
func Feed(ctx context.Context, env Env, optFns ...feed.Option) ([]*feed.User, error) {
	env = env.withDefaults()

	optFns = append([]feed.Option{
		feed.WithLogger(env.Logger),
		feed.WithMetricsCollector(env.Metrics),
	}, optFns...)

	calle := feed.NewUser("Calle", optFns...)
	johan := feed.NewUser("Johan", optFns...)
	jonas := feed.NewUser("Jonas", optFns...)
	emma := feed.NewUser("Emma", optFns...)
	users := []*feed.User{calle, johan, jonas, emma}

	subscriptions := []struct {
		pub *feed.User
		sub *feed.User
	}{
		{calle, johan},
		{calle, jonas},
		{calle, emma},
		{johan, calle},
		{johan, jonas},
	}
	for _, s := range subscriptions {
		if err := s.pub.Attach(s.sub); err != nil {
			return nil, err
		}
	}

	start := env.Now()
	end := start.Add(55 * time.Minute)

	activities := []struct {
		user  *feed.User
		sport feed.Sport
	}{
		{calle, feed.SportWalk},
		{johan, feed.SportRun},
	}
	for _, a := range activities {
		rec, err := feed.NewRecording(a.sport, start, end, Track)
		if err != nil {
			return nil, err
		}
		if err := a.user.RegisterActivity(ctx, rec); err != nil {
			return nil, err
		}
	}

	for _, u := range users {
		recs := u.Feed()
		if _, err := fmt.Fprintf(env.Out, "%s's feed (%d):\n", u.ID(), len(recs)); err != nil {
			return nil, err
		}
		for _, r := range recs {
			if _, err := fmt.Fprintf(env.Out, "  %-4s %s %.0f m\n", r.Sport, r.Duration(), r.Distance()); err != nil {
				return nil, err
			}
		}
	}
	return users, nil
}
