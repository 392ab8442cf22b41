package domain

import (
	"strings"
	"time"
)

// Flight is a single scheduled leg. Departure and arrival are absolute UTC
// instants; local wall-clock times are derived through the airport locations
// only where a rule or a response needs them.
type Flight struct {
	Number       string
	Airline      string
	Origin       *Airport
	Destination  *Airport
	DepartureUTC time.Time
	ArrivalUTC   time.Time
	PriceCents   int64
	Aircraft     string
}

func (f *Flight) Duration() time.Duration {
	return f.ArrivalUTC.Sub(f.DepartureUTC)
}

// DepartureLocal is the departure time in the origin airport's timezone.
func (f *Flight) DepartureLocal() time.Time {
	return f.DepartureUTC.In(f.Origin.Location)
}

// ArrivalLocal is the arrival time in the destination airport's timezone.
func (f *Flight) ArrivalLocal() time.Time {
	return f.ArrivalUTC.In(f.Destination.Location)
}

// IsDomestic reports whether origin and destination are in the same country,
// compared case-insensitively.
func (f *Flight) IsDomestic() bool {
	return strings.EqualFold(f.Origin.Country, f.Destination.Country)
}
