package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Domenick1991/skypath/internal/domain"
)

type datasetDocument struct {
	Airports []airportRecord `json:"airports"`
	Flights  []flightRecord  `json:"flights"`
}

// FileSource loads the flight network from a single JSON dataset document
// containing "airports" and "flights" arrays. Malformed records are logged
// and skipped; a dataset with no usable airports or flights is fatal.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(_ context.Context) (*Network, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
	}

	var doc datasetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", s.path, err)
	}
	if doc.Airports == nil {
		return nil, fmt.Errorf("dataset %s missing 'airports' array", s.path)
	}
	if doc.Flights == nil {
		return nil, fmt.Errorf("dataset %s missing 'flights' array", s.path)
	}

	airports := make(map[string]*domain.Airport, len(doc.Airports))
	for _, rec := range doc.Airports {
		airport, err := mapAirport(rec)
		if err != nil {
			log.Printf("skipping airport: %v", err)
			continue
		}
		airports[airport.Code] = airport
	}
	if len(airports) == 0 {
		return nil, fmt.Errorf("no valid airports found in dataset %s", s.path)
	}

	flights := make([]*domain.Flight, 0, len(doc.Flights))
	for _, rec := range doc.Flights {
		flight, err := mapFlight(rec, airports)
		if err != nil {
			log.Printf("skipping flight: %v", err)
			continue
		}
		flights = append(flights, flight)
	}
	if len(flights) == 0 {
		return nil, fmt.Errorf("no valid flights found in dataset %s", s.path)
	}

	log.Printf("loaded %d airports and %d flights from %s", len(airports), len(flights), s.path)
	return &Network{Airports: airports, Flights: flights}, nil
}

var _ Source = (*FileSource)(nil)
