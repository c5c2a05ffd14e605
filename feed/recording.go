package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sport is the kind of activity recorded.
type Sport string

const (
	SportRun  Sport = "Run"
	SportWalk Sport = "Walk"
	SportBike Sport = "Bike"
	SportSwim Sport = "Swim"
)

// Valid reports whether s is one of the known sports.
func (s Sport) Valid() bool {
	switch s {
	case SportRun, SportWalk, SportBike, SportSwim:
		return true
	default:
		return false
	}
}

// ParseSport resolves a sport name case-insensitively.
func ParseSport(name string) (Sport, error) {
	for _, s := range []Sport{SportRun, SportWalk, SportBike, SportSwim} {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sport %q", ErrInvalidRecording, name)
}

// Coordinate is a GPS position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Recording is a single tracked activity.
type Recording struct {
	ID             uuid.UUID    `json:"id"`
	Sport          Sport        `json:"sport"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        time.Time    `json:"end_time"`
	GPSCoordinates []Coordinate `json:"gps_coordinates"`
}

// NewRecording creates a validated recording with a fresh ID.
func NewRecording(sport Sport, start, end time.Time, track []Coordinate) (Recording, error) {
	rec := Recording{
		ID:             uuid.New(),
		Sport:          sport,
		StartTime:      start,
		EndTime:        end,
		GPSCoordinates: append([]Coordinate(nil), track...),
	}
	if err := rec.Validate(); err != nil {
		return Recording{}, err
	}
	return rec, nil
}

// Validate checks the sport and the time range.
func (r Recording) Validate() error {
	if !r.Sport.Valid() {
		return fmt.Errorf("%w: unknown sport %q", ErrInvalidRecording, r.Sport)
	}
	if r.EndTime.Before(r.StartTime) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidRecording,
			r.EndTime.Format(time.RFC3339), r.StartTime.Format(time.RFC3339))
	}
	return nil
}

// Duration returns the elapsed time of the activity.
func (r Recording) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

const earthRadiusMeters = 6371000.0

// Distance returns the length of the GPS track in meters.
func (r Recording) Distance() float64 {
	var total float64
	for i := 1; i < len(r.GPSCoordinates); i++ {
		total += haversine(r.GPSCoordinates[i-1], r.GPSCoordinates[i])
	}
	return total
}

func haversine(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
