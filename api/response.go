package api

import (
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

// Response models for the search API. Projection of UTC instants into each
// airport's local civil time happens here and nowhere else.

type ItineraryResponse struct {
	Segments             []FlightSegmentResponse `json:"segments"`
	Layovers             []LayoverResponse       `json:"layovers"`
	Stops                int                     `json:"stops"`
	TotalDurationMinutes int64                   `json:"totalDurationMinutes"`
	TotalPriceCents      int64                   `json:"totalPriceCents"`
}

type FlightSegmentResponse struct {
	FlightNumber       string `json:"flightNumber"`
	Airline            string `json:"airline"`
	OriginCode         string `json:"originCode"`
	OriginCity         string `json:"originCity"`
	DestinationCode    string `json:"destinationCode"`
	DestinationCity    string `json:"destinationCity"`
	DepartureTimeLocal string `json:"departureTimeLocal"`
	ArrivalTimeLocal   string `json:"arrivalTimeLocal"`
	Aircraft           string `json:"aircraft"`
	PriceCents         int64  `json:"priceCents"`
}

type LayoverResponse struct {
	AirportCode     string `json:"airportCode"`
	DurationMinutes int64  `json:"durationMinutes"`
}

type AirportSummary struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func toItineraryResponse(it domain.Itinerary) ItineraryResponse {
	legs := it.Legs()

	segments := make([]FlightSegmentResponse, 0, len(legs))
	for _, leg := range legs {
		segments = append(segments, toSegmentResponse(leg))
	}

	return ItineraryResponse{
		Segments:             segments,
		Layovers:             computeLayovers(legs),
		Stops:                it.Stops(),
		TotalDurationMinutes: int64(it.TotalDuration() / time.Minute),
		TotalPriceCents:      it.TotalPriceCents(),
	}
}

func toSegmentResponse(leg *domain.Flight) FlightSegmentResponse {
	return FlightSegmentResponse{
		FlightNumber:       leg.Number,
		Airline:            leg.Airline,
		OriginCode:         leg.Origin.Code,
		OriginCity:         leg.Origin.City,
		DestinationCode:    leg.Destination.Code,
		DestinationCity:    leg.Destination.City,
		DepartureTimeLocal: leg.DepartureLocal().Format(time.RFC3339),
		ArrivalTimeLocal:   leg.ArrivalLocal().Format(time.RFC3339),
		Aircraft:           leg.Aircraft,
		PriceCents:         leg.PriceCents,
	}
}

// computeLayovers measures the gap at each connection airport, in the local
// time of that airport.
func computeLayovers(legs []*domain.Flight) []LayoverResponse {
	if len(legs) <= 1 {
		return []LayoverResponse{}
	}

	layovers := make([]LayoverResponse, 0, len(legs)-1)
	for i := 0; i < len(legs)-1; i++ {
		current := legs[i]
		next := legs[i+1]
		gap := next.DepartureLocal().Sub(current.ArrivalLocal())
		layovers = append(layovers, LayoverResponse{
			AirportCode:     current.Destination.Code,
			DurationMinutes: int64(gap / time.Minute),
		})
	}
	return layovers
}
