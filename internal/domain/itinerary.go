package domain

import "time"

// Itinerary is an immutable, ordered, non-empty chain of flights where each
// leg departs from the previous leg's destination.
//
// "No possible journeys" is an empty []Itinerary, never an itinerary with
// zero legs: NewItinerary panics on an empty slice because that is a bug in
// the caller, not a search outcome.
type Itinerary struct {
	legs []*Flight
}

func NewItinerary(legs ...*Flight) Itinerary {
	if len(legs) == 0 {
		panic("domain: itinerary must contain at least one flight leg")
	}
	copied := make([]*Flight, len(legs))
	copy(copied, legs)
	return Itinerary{legs: copied}
}

// Legs returns the legs in order from origin to final destination.
// The returned slice is a copy; the itinerary cannot be mutated through it.
func (it Itinerary) Legs() []*Flight {
	out := make([]*Flight, len(it.legs))
	copy(out, it.legs)
	return out
}

func (it Itinerary) NumLegs() int {
	return len(it.legs)
}

func (it Itinerary) Leg(i int) *Flight {
	return it.legs[i]
}

// Stops is the number of intermediate airports: legs - 1.
func (it Itinerary) Stops() int {
	return len(it.legs) - 1
}

// TotalPriceCents is the exact sum of all leg prices.
func (it Itinerary) TotalPriceCents() int64 {
	var total int64
	for _, leg := range it.legs {
		total += leg.PriceCents
	}
	return total
}

// TotalDuration is last-leg arrival minus first-leg departure, both in UTC,
// so overnight and date-line itineraries come out right.
func (it Itinerary) TotalDuration() time.Duration {
	first := it.legs[0]
	last := it.legs[len(it.legs)-1]
	return last.ArrivalUTC.Sub(first.DepartureUTC)
}
