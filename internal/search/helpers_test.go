package search

import (
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

var (
	zoneEast = time.FixedZone("UTC-5", -5*60*60)
	zoneWest = time.FixedZone("UTC-8", -8*60*60)
)

func testAirport(code, country string, loc *time.Location) *domain.Airport {
	return &domain.Airport{
		Code:     code,
		Name:     code + " airport",
		City:     code + " city",
		Country:  country,
		Location: loc,
	}
}

func testFlight(number string, origin, destination *domain.Airport, departureUTC, arrivalUTC time.Time, priceCents int64) *domain.Flight {
	return &domain.Flight{
		Number:       number,
		Airline:      "TestAir",
		Origin:       origin,
		Destination:  destination,
		DepartureUTC: departureUTC,
		ArrivalUTC:   arrivalUTC,
		PriceCents:   priceCents,
		Aircraft:     "A320",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 15, hour, minute, 0, 0, time.UTC)
}
