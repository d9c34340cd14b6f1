package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Randomizer selects the source of faceoff draws
type Randomizer struct {
	// Mode is "remote" (random.org) or "pseudo" (in-process)
	Mode string

	// URL overrides the random.org endpoint, mainly for tests
	URL string

	TimeoutSec int `json:"timeout-sec"`
}

// Tmdb is settings for the metadata lookup client
type Tmdb struct {
	Token   string
	BaseURL string `json:"base-url"`

	CacheFile     string `json:"cache-file"`
	CacheTTLHours int    `json:"cache-ttl-hours"`
}

// Retention controls the purge of soft-deleted catalog items
type Retention struct {
	PurgeAfterDays   int `json:"purge-after-days"`
	SweepIntervalMin int `json:"sweep-interval-min"`
}

// Configuration represents entire service configuration
type Configuration struct {
	// MongoDB connection string
	Database string

	Randomizer Randomizer
	Tmdb       Tmdb
	Retention  Retention
}

var config Configuration

// Load opens and parses configuration file
func Load(configFilePath string) error {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return fmt.Errorf("read config failed: %w", err)
	}

	cfg := Configuration{
		Randomizer: Randomizer{Mode: "remote", TimeoutSec: 10},
		Tmdb:       Tmdb{CacheTTLHours: 24},
		Retention:  Retention{PurgeAfterDays: 30, SweepIntervalMin: 60},
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config failed: %w", err)
	}

	config = cfg
	return nil
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}
