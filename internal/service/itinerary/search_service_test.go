package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/Domenick1991/skypath/internal/events"
	"github.com/Domenick1991/skypath/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var zoneNY = time.FixedZone("UTC-5", -5*60*60)

func fixtureNetwork() (map[string]*domain.Airport, *search.Engine) {
	jfk := &domain.Airport{Code: "JFK", Name: "JFK", City: "New York", Country: "USA", Location: zoneNY}
	lax := &domain.Airport{Code: "LAX", Name: "LAX", City: "Los Angeles", Country: "USA", Location: time.FixedZone("UTC-8", -8*60*60)}

	// Departs 10:00 local on March 15 at JFK, i.e. 15:00 UTC.
	flight := &domain.Flight{
		Number:       "SP101",
		Airline:      "SkyPath Air",
		Origin:       jfk,
		Destination:  lax,
		DepartureUTC: time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC),
		ArrivalUTC:   time.Date(2024, time.March, 15, 21, 0, 0, 0, time.UTC),
		PriceCents:   32500,
		Aircraft:     "A321",
	}

	airports := map[string]*domain.Airport{"JFK": jfk, "LAX": lax}
	index := search.NewNetworkIndex([]*domain.Flight{flight})
	engine := search.NewEngine(index, search.DefaultMaxStops, search.DefaultLayoverPolicy())
	return airports, engine
}

func travelDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSearchService_FindsFlightOnLocalDate(t *testing.T) {
	airports, engine := fixtureNetwork()
	service := NewSearchService(airports, engine)

	result, err := service.Search(context.Background(), "JFK", "LAX", travelDate(2024, time.March, 15))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "SP101", result[0].Leg(0).Number)
}

func TestSearchService_WindowIsOriginLocalDay(t *testing.T) {
	airports, engine := fixtureNetwork()
	service := NewSearchService(airports, engine)

	// The flight departs March 15 in JFK local time, so neither adjacent
	// date matches.
	before, err := service.Search(context.Background(), "JFK", "LAX", travelDate(2024, time.March, 14))
	require.NoError(t, err)
	assert.Empty(t, before)

	after, err := service.Search(context.Background(), "JFK", "LAX", travelDate(2024, time.March, 16))
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestSearchService_UnknownAirports(t *testing.T) {
	airports, engine := fixtureNetwork()
	service := NewSearchService(airports, engine)

	_, err := service.Search(context.Background(), "ZZZ", "LAX", travelDate(2024, time.March, 15))
	assert.ErrorIs(t, err, ErrUnknownAirport)

	_, err = service.Search(context.Background(), "JFK", "ZZZ", travelDate(2024, time.March, 15))
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestSearchService_SameOriginAndDestination(t *testing.T) {
	airports, engine := fixtureNetwork()
	service := NewSearchService(airports, engine)

	result, err := service.Search(context.Background(), "JFK", "JFK", travelDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSearchService_PublishesSearchEvent(t *testing.T) {
	airports, engine := fixtureNetwork()

	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "search-events", mock.Anything, mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(events.SearchEvent)
		return ok &&
			event.Origin == "JFK" &&
			event.Destination == "LAX" &&
			event.TravelDate == "2024-03-15" &&
			event.Itineraries == 1 &&
			event.ID != ""
	})).Return(nil).Once()

	service := NewSearchService(airports, engine, WithSearchEvents(producer, "search-events"))

	_, err := service.Search(context.Background(), "JFK", "LAX", travelDate(2024, time.March, 15))
	require.NoError(t, err)

	producer.AssertExpectations(t)
}

func TestSearchService_PublishFailureDoesNotFailSearch(t *testing.T) {
	airports, engine := fixtureNetwork()

	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "search-events", mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	service := NewSearchService(airports, engine, WithSearchEvents(producer, "search-events"))

	result, err := service.Search(context.Background(), "JFK", "LAX", travelDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Len(t, result, 1)

	producer.AssertExpectations(t)
}

func TestSearchService_ListAirportsSortedByCode(t *testing.T) {
	airports, engine := fixtureNetwork()
	service := NewSearchService(airports, engine)

	listed := service.ListAirports(context.Background())
	require.Len(t, listed, 2)
	assert.Equal(t, "JFK", listed[0].Code)
	assert.Equal(t, "LAX", listed[1].Code)
}
