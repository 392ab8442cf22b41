package ingest

import (
	"context"

	"github.com/Domenick1991/skypath/internal/domain"
)

// Network is the validated flight network handed to the search index:
// airports keyed by code and flights with resolved airport references and
// UTC instants. Anything malformed has already been skipped by the source.
type Network struct {
	Airports map[string]*domain.Airport
	Flights  []*domain.Flight
}

// Source loads the full flight network once at startup.
type Source interface {
	Load(ctx context.Context) (*Network, error)
}
