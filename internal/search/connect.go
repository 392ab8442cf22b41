package search

import (
	"log"
	"sort"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

// buildItinerariesForPath dispatches on the number of legs in the airport
// path (1, 2 or 3) to the matching builder. All builders share the same
// per-hop extension primitive in addValidConnections.
func (e *Engine) buildItinerariesForPath(path []string, windowStart, windowEnd time.Time) []domain.Itinerary {
	switch len(path) - 1 {
	case 1:
		return e.buildDirect(path, windowStart, windowEnd)
	case 2:
		return e.buildOneStop(path, windowStart, windowEnd)
	case 3:
		return e.buildTwoStop(path, windowStart, windowEnd)
	default:
		log.Printf("ignoring airport path with %d legs (more than %d stops): %v", len(path)-1, e.maxStops, path)
		return nil
	}
}

func (e *Engine) buildDirect(path []string, windowStart, windowEnd time.Time) []domain.Itinerary {
	flights := e.index.route(path[0], path[1])

	var result []domain.Itinerary
	for _, f := range flights {
		if !inDepartureWindow(f.DepartureUTC, windowStart, windowEnd) {
			continue
		}
		result = append(result, domain.NewItinerary(f))
	}
	return result
}

func (e *Engine) buildOneStop(path []string, windowStart, windowEnd time.Time) []domain.Itinerary {
	firstLegFlights := e.index.route(path[0], path[1])
	secondLegFlights := e.index.route(path[1], path[2])
	if len(firstLegFlights) == 0 || len(secondLegFlights) == 0 {
		return nil
	}

	var result []domain.Itinerary
	for _, firstLeg := range firstLegFlights {
		// Only the first leg is constrained by the query date.
		if !inDepartureWindow(firstLeg.DepartureUTC, windowStart, windowEnd) {
			continue
		}
		e.addValidConnections(firstLeg, secondLegFlights, nil, &result)
	}
	return result
}

func (e *Engine) buildTwoStop(path []string, windowStart, windowEnd time.Time) []domain.Itinerary {
	firstLegFlights := e.index.route(path[0], path[1])
	secondLegFlights := e.index.route(path[1], path[2])
	thirdLegFlights := e.index.route(path[2], path[3])
	if len(firstLegFlights) == 0 || len(secondLegFlights) == 0 || len(thirdLegFlights) == 0 {
		return nil
	}

	var result []domain.Itinerary
	for _, firstLeg := range firstLegFlights {
		if !inDepartureWindow(firstLeg.DepartureUTC, windowStart, windowEnd) {
			continue
		}

		// Loosest plausible second-leg departure: the domestic minimum is a
		// lower bound only; the exact requirement is re-applied per pair.
		earliestSecond := firstLeg.ArrivalUTC.Add(e.policy.MinDomestic)
		start := firstDepartureNotBefore(secondLegFlights, earliestSecond)
		if start < 0 {
			continue
		}

		for i := start; i < len(secondLegFlights); i++ {
			secondLeg := secondLegFlights[i]

			// The list is sorted by departure, so once the UTC gap exceeds
			// the maximum layover every later candidate does too.
			if secondLeg.DepartureUTC.Sub(firstLeg.ArrivalUTC) > e.policy.Max {
				break
			}
			if !e.policy.validConnection(firstLeg, secondLeg) {
				continue
			}

			// Chain the same primitive for the final hop, carrying the
			// accepted first leg so the itinerary captures all three legs.
			e.addValidConnections(secondLeg, thirdLegFlights, firstLeg, &result)
		}
	}
	return result
}

// addValidConnections extends currentLeg with every feasible nextLeg drawn
// from the sorted candidate list. With previousLeg nil the accepted
// itineraries are [currentLeg, nextLeg]; otherwise
// [previousLeg, currentLeg, nextLeg].
func (e *Engine) addValidConnections(currentLeg *domain.Flight, candidates []*domain.Flight, previousLeg *domain.Flight, accumulator *[]domain.Itinerary) {
	if len(candidates) == 0 {
		return
	}

	earliestNext := currentLeg.ArrivalUTC.Add(e.policy.MinDomestic)
	start := firstDepartureNotBefore(candidates, earliestNext)
	if start < 0 {
		return
	}

	for i := start; i < len(candidates); i++ {
		nextLeg := candidates[i]

		if nextLeg.DepartureUTC.Sub(currentLeg.ArrivalUTC) > e.policy.Max {
			break
		}
		if !e.policy.validConnection(currentLeg, nextLeg) {
			continue
		}

		if previousLeg == nil {
			*accumulator = append(*accumulator, domain.NewItinerary(currentLeg, nextLeg))
		} else {
			*accumulator = append(*accumulator, domain.NewItinerary(previousLeg, currentLeg, nextLeg))
		}
	}
}

// firstDepartureNotBefore finds the index of the first flight whose UTC
// departure is not before threshold, assuming flights are sorted ascending
// by departure. Returns -1 when no flight departs late enough.
func firstDepartureNotBefore(flights []*domain.Flight, threshold time.Time) int {
	i := sort.Search(len(flights), func(i int) bool {
		return !flights[i].DepartureUTC.Before(threshold)
	})
	if i == len(flights) {
		return -1
	}
	return i
}

// inDepartureWindow reports whether departure falls in the half-open UTC
// interval [start, end).
func inDepartureWindow(departure, start, end time.Time) bool {
	return !departure.Before(start) && departure.Before(end)
}
