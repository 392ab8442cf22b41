package search

// findAirportPaths enumerates every simple airport-code path from origin to
// destination with at most maxLegs edges, using the index adjacency graph.
// Cost depends only on the branching factor of the graph, not on how many
// flights exist per route.
func findAirportPaths(idx *NetworkIndex, origin, destination string, maxLegs int) [][]string {
	var result [][]string
	current := []string{origin}
	dfsAirportPaths(idx, origin, destination, maxLegs, current, &result)
	return result
}

func dfsAirportPaths(idx *NetworkIndex, current, target string, remainingLegs int, path []string, result *[][]string) {
	if current == target {
		// path already holds a valid sequence from origin to target.
		recorded := make([]string, len(path))
		copy(recorded, path)
		*result = append(*result, recorded)
		return
	}

	if remainingLegs == 0 {
		return
	}

	for _, next := range idx.neighbors(current) {
		if containsCode(path, next) {
			// Avoid cycles like JFK -> LHR -> JFK -> ...
			continue
		}
		dfsAirportPaths(idx, next, target, remainingLegs-1, append(path, next), result)
	}
}

func containsCode(path []string, code string) bool {
	for _, c := range path {
		if c == code {
			return true
		}
	}
	return false
}
