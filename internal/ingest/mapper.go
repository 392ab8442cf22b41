package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

// datasetTimeLayout is the local civil datetime format used by the dataset,
// interpreted in the timezone of the relevant airport.
const datasetTimeLayout = "2006-01-02T15:04:05"

type airportRecord struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type flightRecord struct {
	FlightNumber  string `json:"flightNumber"`
	Airline       string `json:"airline"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Price         string `json:"price"`
	Aircraft      string `json:"aircraft"`
}

func mapAirport(rec airportRecord) (*domain.Airport, error) {
	if rec.Code == "" || rec.Name == "" || rec.City == "" || rec.Country == "" || rec.Timezone == "" {
		return nil, fmt.Errorf("missing fields in airport record %+v", rec)
	}
	loc, err := time.LoadLocation(rec.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q for airport %s: %w", rec.Timezone, rec.Code, err)
	}
	return &domain.Airport{
		Code:     rec.Code,
		Name:     rec.Name,
		City:     rec.City,
		Country:  rec.Country,
		Location: loc,
	}, nil
}

func mapFlight(rec flightRecord, airports map[string]*domain.Airport) (*domain.Flight, error) {
	if rec.FlightNumber == "" || rec.Airline == "" || rec.Origin == "" || rec.Destination == "" ||
		rec.DepartureTime == "" || rec.ArrivalTime == "" || rec.Price == "" || rec.Aircraft == "" {
		return nil, fmt.Errorf("missing fields in flight record %+v", rec)
	}

	origin, ok := airports[rec.Origin]
	if !ok {
		return nil, fmt.Errorf("unknown origin airport code %q for flight %s", rec.Origin, rec.FlightNumber)
	}
	destination, ok := airports[rec.Destination]
	if !ok {
		return nil, fmt.Errorf("unknown destination airport code %q for flight %s", rec.Destination, rec.FlightNumber)
	}

	departureLocal, err := time.ParseInLocation(datasetTimeLayout, rec.DepartureTime, origin.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid departure time %q for flight %s: %w", rec.DepartureTime, rec.FlightNumber, err)
	}
	arrivalLocal, err := time.ParseInLocation(datasetTimeLayout, rec.ArrivalTime, destination.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid arrival time %q for flight %s: %w", rec.ArrivalTime, rec.FlightNumber, err)
	}

	departureUTC := departureLocal.UTC()
	arrivalUTC := arrivalLocal.UTC()
	if !arrivalUTC.After(departureUTC) {
		return nil, fmt.Errorf("arrival is not after departure for flight %s (departure=%s, arrival=%s)",
			rec.FlightNumber, departureUTC, arrivalUTC)
	}

	priceCents, err := ParsePriceCents(rec.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for flight %s: %w", rec.Price, rec.FlightNumber, err)
	}

	return &domain.Flight{
		Number:       rec.FlightNumber,
		Airline:      rec.Airline,
		Origin:       origin,
		Destination:  destination,
		DepartureUTC: departureUTC,
		ArrivalUTC:   arrivalUTC,
		PriceCents:   priceCents,
		Aircraft:     rec.Aircraft,
	}, nil
}

// ParsePriceCents converts a decimal price string with at most two
// fractional digits into exact integer cents. Negative prices are rejected.
func ParsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("price must be a non-negative decimal, got %q", s)
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("price %q has more than two fractional digits", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return units*100 + cents, nil
}
