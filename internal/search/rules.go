package search

import (
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

const (
	DefaultMaxStops = 2

	defaultMinDomesticLayover      = 45 * time.Minute
	defaultMinInternationalLayover = 90 * time.Minute
	defaultMaxLayover              = 6 * time.Hour
)

// LayoverPolicy carries the connection-feasibility rules as data so that a
// stricter mode (e.g. domestic-only itineraries) can be introduced by
// swapping the policy value, without touching the search algorithm.
type LayoverPolicy struct {
	// MinDomestic applies when both legs of a connection are domestic.
	MinDomestic time.Duration
	// MinInternational applies when either leg is international.
	MinInternational time.Duration
	// Max applies to every connection regardless of classification.
	Max time.Duration
	// IsDomestic classifies a single leg. Nil means the flight's own
	// origin/destination country comparison.
	IsDomestic func(*domain.Flight) bool
}

func DefaultLayoverPolicy() LayoverPolicy {
	return LayoverPolicy{
		MinDomestic:      defaultMinDomesticLayover,
		MinInternational: defaultMinInternationalLayover,
		Max:              defaultMaxLayover,
	}
}

func (p LayoverPolicy) classify(f *domain.Flight) bool {
	if p.IsDomestic != nil {
		return p.IsDomestic(f)
	}
	return f.IsDomestic()
}

// minLayover picks the minimum gap for a connection: the domestic constant
// only when both legs are domestic, the international one otherwise.
func (p LayoverPolicy) minLayover(first, second *domain.Flight) time.Duration {
	if p.classify(first) && p.classify(second) {
		return p.MinDomestic
	}
	return p.MinInternational
}

// validConnection applies the precise feasibility rule between two
// consecutive legs, evaluated in the local civil time of the connection
// airport. The same-airport check is always true for legs drawn from a
// path, but is re-checked here so the rule stands on its own.
func (p LayoverPolicy) validConnection(first, second *domain.Flight) bool {
	if first.Destination.Code != second.Origin.Code {
		return false
	}

	arrivalLocal := first.ArrivalLocal()
	departureLocal := second.DepartureLocal()

	// Departing at or before the arrival time is never a connection.
	if !departureLocal.After(arrivalLocal) {
		return false
	}

	layover := departureLocal.Sub(arrivalLocal)
	if layover < p.minLayover(first, second) {
		return false
	}
	if layover > p.Max {
		return false
	}
	return true
}
