package search

import (
	"sort"

	"github.com/Domenick1991/skypath/internal/domain"
)

type routeKey struct {
	origin      string
	destination string
}

// NetworkIndex is the read-side index over the loaded flight network,
// built once at startup and never mutated afterwards. It groups flights
// by (origin, destination) route, sorted ascending by UTC departure, and
// keeps a route adjacency graph so airport paths can be searched without
// touching individual flights.
//
// The index holds shared references to the flights handed to it; the
// grouping structures themselves are owned by the index alone.
type NetworkIndex struct {
	flightsByRoute map[routeKey][]*domain.Flight
	// adjacency maps an origin code to the sorted, de-duplicated codes of
	// destinations with at least one direct flight. Sorted order makes
	// path discovery, and therefore tie ordering, deterministic.
	adjacency map[string][]string
}

// NewNetworkIndex builds the route index and adjacency graph. It performs
// no validation of its own: flights are assumed to have been vetted by the
// ingestion layer already.
func NewNetworkIndex(flights []*domain.Flight) *NetworkIndex {
	byRoute := make(map[routeKey][]*domain.Flight)
	destinationSets := make(map[string]map[string]struct{})

	for _, f := range flights {
		key := routeKey{origin: f.Origin.Code, destination: f.Destination.Code}
		byRoute[key] = append(byRoute[key], f)

		destinations, ok := destinationSets[f.Origin.Code]
		if !ok {
			destinations = make(map[string]struct{})
			destinationSets[f.Origin.Code] = destinations
		}
		destinations[f.Destination.Code] = struct{}{}
	}

	// Every downstream scan relies on this ordering for pruning.
	for _, group := range byRoute {
		sort.Slice(group, func(i, j int) bool {
			return group[i].DepartureUTC.Before(group[j].DepartureUTC)
		})
	}

	adjacency := make(map[string][]string, len(destinationSets))
	for origin, destinations := range destinationSets {
		codes := make([]string, 0, len(destinations))
		for code := range destinations {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		adjacency[origin] = codes
	}

	return &NetworkIndex{flightsByRoute: byRoute, adjacency: adjacency}
}

// FindByRoute returns all flights on the (origin, destination) route,
// sorted ascending by UTC departure. The result is a copy and is empty,
// never nil, when no such route exists.
func (idx *NetworkIndex) FindByRoute(origin, destination string) []*domain.Flight {
	group := idx.route(origin, destination)
	out := make([]*domain.Flight, len(group))
	copy(out, group)
	return out
}

// Destinations returns the codes reachable from origin by at least one
// direct flight, as a copied set.
func (idx *NetworkIndex) Destinations(origin string) map[string]struct{} {
	out := make(map[string]struct{}, len(idx.adjacency[origin]))
	for _, code := range idx.adjacency[origin] {
		out[code] = struct{}{}
	}
	return out
}

// route exposes the internal sorted group to the search hot path, which
// must not mutate it.
func (idx *NetworkIndex) route(origin, destination string) []*domain.Flight {
	return idx.flightsByRoute[routeKey{origin: origin, destination: destination}]
}

func (idx *NetworkIndex) neighbors(origin string) []string {
	return idx.adjacency[origin]
}
