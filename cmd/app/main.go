package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skypath/api"
	"github.com/Domenick1991/skypath/config"
	"github.com/Domenick1991/skypath/internal/bootstrap"
	"github.com/Domenick1991/skypath/internal/events"
	"github.com/Domenick1991/skypath/internal/ingest"
	"github.com/Domenick1991/skypath/internal/search"
	"github.com/Domenick1991/skypath/internal/service/itinerary"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		log.Fatalf("configure dataset source: %v", err)
	}
	defer cleanup()

	network, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("load flight network: %v", err)
	}

	index := search.NewNetworkIndex(network.Flights)
	engine := search.NewEngine(index, maxStops(cfg), layoverPolicy(cfg))

	opts := []itinerary.SearchServiceOption{}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.SearchEventsTopic != "" {
		producer := events.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, itinerary.WithSearchEvents(producer, cfg.Kafka.SearchEventsTopic))
	}

	service := itinerary.NewSearchService(network.Airports, engine, opts...)

	searchHandler := api.NewSearchHandler(service)
	airportHandler := api.NewAirportHandler(service)

	if err := bootstrap.Run(ctx, cfg, searchHandler, airportHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newSource(ctx context.Context, cfg *config.Config) (ingest.Source, func(), error) {
	if cfg.Dataset.Source == "postgres" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		return ingest.NewPGSource(pool), pool.Close, nil
	}

	path := cfg.Dataset.Path
	if path == "" {
		path = "data/flights.json"
	}
	return ingest.NewFileSource(path), func() {}, nil
}

func maxStops(cfg *config.Config) int {
	if cfg.Search.MaxStops > 0 {
		return cfg.Search.MaxStops
	}
	return search.DefaultMaxStops
}

func layoverPolicy(cfg *config.Config) search.LayoverPolicy {
	policy := search.DefaultLayoverPolicy()
	if cfg.Search.MinDomesticLayoverMinutes > 0 {
		policy.MinDomestic = time.Duration(cfg.Search.MinDomesticLayoverMinutes) * time.Minute
	}
	if cfg.Search.MinInternationalLayoverMinutes > 0 {
		policy.MinInternational = time.Duration(cfg.Search.MinInternationalLayoverMinutes) * time.Minute
	}
	if cfg.Search.MaxLayoverMinutes > 0 {
		policy.Max = time.Duration(cfg.Search.MaxLayoverMinutes) * time.Minute
	}
	return policy
}
