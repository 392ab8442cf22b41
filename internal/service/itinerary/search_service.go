package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/Domenick1991/skypath/internal/events"
	"github.com/Domenick1991/skypath/internal/search"
	"github.com/google/uuid"
)

// ErrUnknownAirport marks a search request naming an airport code that is
// not present in the loaded dataset.
var ErrUnknownAirport = errors.New("unknown airport")

type SearchUseCase interface {
	Search(ctx context.Context, originCode, destinationCode string, travelDate time.Time) ([]domain.Itinerary, error)
	ListAirports(ctx context.Context) []*domain.Airport
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// SearchService orchestrates a flight search: it validates input, resolves
// airports, computes the UTC departure window for the requested local date
// and delegates the actual search to the engine.
type SearchService struct {
	airports    map[string]*domain.Airport
	engine      *search.Engine
	producer    Producer
	eventsTopic string
}

type SearchServiceOption func(*SearchService)

// WithSearchEvents enables fire-and-forget publishing of one event per
// completed search.
func WithSearchEvents(producer Producer, topic string) SearchServiceOption {
	return func(s *SearchService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewSearchService(airports map[string]*domain.Airport, engine *search.Engine, opts ...SearchServiceOption) *SearchService {
	service := &SearchService{
		airports: airports,
		engine:   engine,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Search finds all itineraries from originCode to destinationCode on
// travelDate, interpreted as a calendar date in the origin airport's local
// timezone. No flights is not an error: the result is simply empty.
func (s *SearchService) Search(ctx context.Context, originCode, destinationCode string, travelDate time.Time) ([]domain.Itinerary, error) {
	origin, ok := s.airports[originCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, originCode)
	}
	if _, ok := s.airports[destinationCode]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, destinationCode)
	}

	if originCode == destinationCode {
		log.Printf("origin and destination are the same (%s), returning empty result", originCode)
		return []domain.Itinerary{}, nil
	}

	// The departure window is [local midnight, next local midnight) at the
	// origin, carried as UTC instants from here on.
	windowStart, windowEnd := departureWindowUTC(origin, travelDate)

	started := time.Now()
	itineraries := s.engine.Search(originCode, destinationCode, windowStart, windowEnd)
	s.publishSearchEvent(ctx, originCode, destinationCode, travelDate, len(itineraries), time.Since(started))

	return itineraries, nil
}

// ListAirports returns the loaded airports sorted by code.
func (s *SearchService) ListAirports(_ context.Context) []*domain.Airport {
	airports := make([]*domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].Code < airports[j].Code })
	return airports
}

// departureWindowUTC converts the travel date into the half-open UTC
// interval covering that calendar day at the origin. AddDate on the zoned
// midnight keeps the window correct across DST transitions.
func departureWindowUTC(origin *domain.Airport, travelDate time.Time) (time.Time, time.Time) {
	y, m, d := travelDate.Date()
	startLocal := time.Date(y, m, d, 0, 0, 0, 0, origin.Location)
	endLocal := startLocal.AddDate(0, 0, 1)
	return startLocal.UTC(), endLocal.UTC()
}

func (s *SearchService) publishSearchEvent(ctx context.Context, originCode, destinationCode string, travelDate time.Time, results int, took time.Duration) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := events.SearchEvent{
		ID:          uuid.NewString(),
		Origin:      originCode,
		Destination: destinationCode,
		TravelDate:  travelDate.Format("2006-01-02"),
		Itineraries: results,
		TookMS:      took.Milliseconds(),
		At:          time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.ID, event); err != nil {
		log.Printf("failed to publish search event %s: %v", event.ID, err)
	}
}

var _ SearchUseCase = (*SearchService)(nil)
