package domain

import "time"

// Airport is an immutable reference entity shared by many flights.
// Code is the unique 3-letter IATA key.
type Airport struct {
	Code     string
	Name     string
	City     string
	Country  string
	Location *time.Location
}
