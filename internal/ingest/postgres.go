package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSource loads the flight network from Postgres. Like the file source it
// skips rows it cannot turn into valid entities instead of failing the
// whole load.
type PGSource struct {
	db *pgxpool.Pool
}

func NewPGSource(db *pgxpool.Pool) *PGSource {
	return &PGSource{db: db}
}

func (s *PGSource) Load(ctx context.Context) (*Network, error) {
	airports, err := s.loadAirports(ctx)
	if err != nil {
		return nil, err
	}
	if len(airports) == 0 {
		return nil, fmt.Errorf("no valid airports found in database")
	}

	flights, err := s.loadFlights(ctx, airports)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, fmt.Errorf("no valid flights found in database")
	}

	log.Printf("loaded %d airports and %d flights from postgres", len(airports), len(flights))
	return &Network{Airports: airports, Flights: flights}, nil
}

func (s *PGSource) loadAirports(ctx context.Context) (map[string]*domain.Airport, error) {
	rows, err := s.db.Query(ctx, `SELECT code, name, city, country, timezone FROM airports`)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	airports := make(map[string]*domain.Airport)
	for rows.Next() {
		var rec airportRecord
		if err := rows.Scan(&rec.Code, &rec.Name, &rec.City, &rec.Country, &rec.Timezone); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		airport, err := mapAirport(rec)
		if err != nil {
			log.Printf("skipping airport: %v", err)
			continue
		}
		airports[airport.Code] = airport
	}
	return airports, rows.Err()
}

func (s *PGSource) loadFlights(ctx context.Context, airports map[string]*domain.Airport) ([]*domain.Flight, error) {
	rows, err := s.db.Query(ctx, `SELECT flight_number, airline, origin, destination, departure_time, arrival_time, price_cents, aircraft FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	flights := make([]*domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		var originCode, destinationCode string
		if err := rows.Scan(&f.Number, &f.Airline, &originCode, &destinationCode, &f.DepartureUTC, &f.ArrivalUTC, &f.PriceCents, &f.Aircraft); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}

		origin, ok := airports[originCode]
		if !ok {
			log.Printf("skipping flight %s: unknown origin airport code %q", f.Number, originCode)
			continue
		}
		destination, ok := airports[destinationCode]
		if !ok {
			log.Printf("skipping flight %s: unknown destination airport code %q", f.Number, destinationCode)
			continue
		}

		f.Origin = origin
		f.Destination = destination
		f.DepartureUTC = f.DepartureUTC.UTC()
		f.ArrivalUTC = f.ArrivalUTC.UTC()

		if !f.ArrivalUTC.After(f.DepartureUTC) {
			log.Printf("skipping flight %s: arrival is not after departure", f.Number)
			continue
		}
		if f.PriceCents < 0 {
			log.Printf("skipping flight %s: negative price", f.Number)
			continue
		}

		flight := f
		flights = append(flights, &flight)
	}
	return flights, rows.Err()
}

var _ Source = (*PGSource)(nil)
