package search

import (
	"log"
	"sort"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

// Engine runs the itinerary search over an immutable NetworkIndex. It is a
// pure in-memory computation with no shared mutable state, so one Engine
// may serve any number of concurrent searches without locking.
type Engine struct {
	index    *NetworkIndex
	maxStops int
	policy   LayoverPolicy
}

func NewEngine(index *NetworkIndex, maxStops int, policy LayoverPolicy) *Engine {
	return &Engine{index: index, maxStops: maxStops, policy: policy}
}

// Search returns every rule-valid itinerary from originCode to
// destinationCode whose first leg departs within the half-open UTC window
// [windowStart, windowEnd), ordered by fewest stops, then shortest total
// duration, then lowest total price. The result is always non-nil.
func (e *Engine) Search(originCode, destinationCode string, windowStart, windowEnd time.Time) []domain.Itinerary {
	paths := findAirportPaths(e.index, originCode, destinationCode, e.maxStops+1)
	if len(paths) == 0 {
		log.Printf("no airport paths found from %s to %s within %d stops", originCode, destinationCode, e.maxStops)
		return []domain.Itinerary{}
	}

	itineraries := make([]domain.Itinerary, 0)
	for _, path := range paths {
		itineraries = append(itineraries, e.buildItinerariesForPath(path, windowStart, windowEnd)...)
	}

	if len(itineraries) == 0 {
		log.Printf("no time-feasible itineraries from %s to %s in given departure window", originCode, destinationCode)
		return itineraries
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		a, b := itineraries[i], itineraries[j]
		if a.Stops() != b.Stops() {
			return a.Stops() < b.Stops()
		}
		if a.TotalDuration() != b.TotalDuration() {
			return a.TotalDuration() < b.TotalDuration()
		}
		return a.TotalPriceCents() < b.TotalPriceCents()
	})

	return itineraries
}
