package search

import (
	"testing"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(flights []*domain.Flight) *Engine {
	return NewEngine(NewNetworkIndex(flights), DefaultMaxStops, DefaultLayoverPolicy())
}

func window() (time.Time, time.Time) {
	return at(0, 0), at(0, 0).AddDate(0, 0, 1)
}

func TestSearch_DirectFlightWithinWindow(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(9, 0), at(11, 0), 10000),
	})

	start, end := window()
	result := engine.Search("AAA", "BBB", start, end)

	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].NumLegs())
	assert.Equal(t, 0, result[0].Stops())
	assert.Equal(t, "F1", result[0].Leg(0).Number)
}

func TestSearch_DirectFlightJustBeforeWindowIsExcluded(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)

	start, end := window()
	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, start.Add(-time.Minute), start.Add(2*time.Hour), 10000),
	})

	assert.Empty(t, engine.Search("AAA", "BBB", start, end))
}

func TestSearch_WindowEndIsExclusive(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)

	start, end := window()
	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, end, end.Add(2*time.Hour), 10000),
		testFlight("F2", a, b, start, start.Add(2*time.Hour), 10000),
	})

	result := engine.Search("AAA", "BBB", start, end)
	require.Len(t, result, 1)
	assert.Equal(t, "F2", result[0].Leg(0).Number)
}

func TestSearch_OneStopEnforcesDomesticMinimum(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	c := testAirport("CCC", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(8, 0), at(10, 0), 10000),
		// 30 minute gap: below the 45 minute domestic minimum.
		testFlight("F2", b, c, at(10, 30), at(12, 0), 5000),
		// 60 minute gap: acceptable.
		testFlight("F3", b, c, at(11, 0), at(12, 30), 5000),
	})

	start, end := window()
	result := engine.Search("AAA", "CCC", start, end)

	require.Len(t, result, 1)
	require.Equal(t, 2, result[0].NumLegs())
	assert.Equal(t, "F3", result[0].Leg(1).Number)
}

func TestSearch_InternationalConnectionNeedsNinetyMinutes(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	abroad := testAirport("XXX", "France", zoneWest)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(8, 0), at(10, 0), 10000),
		// 60 minute gap onto an international leg: rejected.
		testFlight("F2", b, abroad, at(11, 0), at(19, 0), 40000),
	})

	start, end := window()
	assert.Empty(t, engine.Search("AAA", "XXX", start, end))
}

func TestSearch_TwoStopChain(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	c := testAirport("CCC", "USA", zoneEast)
	d := testAirport("DDD", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(8, 0), at(9, 0), 10000),
		testFlight("F2", b, c, at(10, 0), at(11, 0), 8000),
		testFlight("F3", c, d, at(12, 0), at(13, 0), 6000),
	})

	start, end := window()
	result := engine.Search("AAA", "DDD", start, end)

	require.Len(t, result, 1)
	it := result[0]
	assert.Equal(t, 3, it.NumLegs())
	assert.Equal(t, 2, it.Stops())
	assert.Equal(t, "F1", it.Leg(0).Number)
	assert.Equal(t, "F2", it.Leg(1).Number)
	assert.Equal(t, "F3", it.Leg(2).Number)
	assert.Equal(t, int64(24000), it.TotalPriceCents())
	assert.Equal(t, 5*time.Hour, it.TotalDuration())
}

func TestSearch_NoAdjacencyGivesEmptyResult(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(8, 0), at(10, 0), 10000),
	})

	start, end := window()
	result := engine.Search("AAA", "ZZZ", start, end)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSearch_MaxLayoverBoundsConnections(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	c := testAirport("CCC", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(6, 0), at(8, 0), 10000),
		// 7 hour gap: beyond the 6 hour maximum.
		testFlight("F2", b, c, at(15, 0), at(17, 0), 5000),
	})

	start, end := window()
	assert.Empty(t, engine.Search("AAA", "CCC", start, end))
}

func TestSearch_OrdersByStopsThenDurationThenPrice(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	c := testAirport("CCC", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		// Two direct flights: same duration, different price.
		testFlight("D-EXP", a, c, at(9, 0), at(12, 0), 30000),
		testFlight("D-CHEAP", a, c, at(7, 0), at(10, 0), 20000),
		// A slower direct flight that is cheapest of all.
		testFlight("D-SLOW", a, c, at(8, 0), at(12, 30), 1000),
		// A one-stop option, cheaper than every direct flight.
		testFlight("F1", a, b, at(8, 0), at(9, 0), 200),
		testFlight("F2", b, c, at(10, 0), at(11, 0), 200),
	})

	start, end := window()
	result := engine.Search("AAA", "CCC", start, end)
	require.Len(t, result, 4)

	var numbers []string
	for _, it := range result {
		numbers = append(numbers, it.Leg(0).Number)
	}
	assert.Equal(t, []string{"D-CHEAP", "D-EXP", "D-SLOW", "F1"}, numbers)

	for i := 1; i < len(result); i++ {
		prev, curr := result[i-1], result[i]
		if prev.Stops() != curr.Stops() {
			assert.Less(t, prev.Stops(), curr.Stops())
			continue
		}
		if prev.TotalDuration() != curr.TotalDuration() {
			assert.Less(t, prev.TotalDuration(), curr.TotalDuration())
			continue
		}
		assert.LessOrEqual(t, prev.TotalPriceCents(), curr.TotalPriceCents())
	}
}

func TestSearch_RepeatedQueriesAreIdentical(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	c := testAirport("CCC", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(8, 0), at(9, 0), 10000),
		testFlight("F2", b, c, at(10, 0), at(11, 0), 8000),
		testFlight("F3", a, c, at(8, 0), at(11, 30), 15000),
	})

	start, end := window()
	first := engine.Search("AAA", "CCC", start, end)
	second := engine.Search("AAA", "CCC", start, end)
	assert.Equal(t, first, second)
}

func TestSearch_ConsecutiveLegsShareAirports(t *testing.T) {
	a := testAirport("AAA", "USA", zoneEast)
	b := testAirport("BBB", "USA", zoneEast)
	c := testAirport("CCC", "USA", zoneEast)
	d := testAirport("DDD", "USA", zoneEast)

	engine := newTestEngine([]*domain.Flight{
		testFlight("F1", a, b, at(8, 0), at(9, 0), 100),
		testFlight("F2", b, c, at(10, 0), at(11, 0), 100),
		testFlight("F3", c, d, at(12, 0), at(13, 0), 100),
		testFlight("F4", a, d, at(8, 0), at(12, 0), 100),
		testFlight("F5", a, c, at(9, 0), at(10, 30), 100),
		testFlight("F6", c, d, at(11, 30), at(12, 30), 100),
	})

	start, end := window()
	for _, it := range engine.Search("AAA", "DDD", start, end) {
		assert.LessOrEqual(t, it.Stops(), DefaultMaxStops)
		legs := it.Legs()
		for i := 0; i < len(legs)-1; i++ {
			assert.Equal(t, legs[i].Destination.Code, legs[i+1].Origin.Code)
		}
	}
}
