package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Search   SearchConfig   `yaml:"search"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// DatasetConfig selects where the flight network is loaded from at startup:
// "file" (default) reads the JSON dataset at Path, "postgres" reads the
// airports and flights tables.
type DatasetConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	SearchEventsTopic string   `yaml:"search_events_topic"`
}

// SearchConfig tunes the itinerary search. Zero values mean "use the
// built-in defaults" (2 stops, 45m/90m minimum layovers, 6h maximum).
type SearchConfig struct {
	MaxStops                       int `yaml:"max_stops"`
	MinDomesticLayoverMinutes      int `yaml:"min_domestic_layover_minutes"`
	MinInternationalLayoverMinutes int `yaml:"min_international_layover_minutes"`
	MaxLayoverMinutes              int `yaml:"max_layover_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
