// Package config reads window and tariff schedules from a JSON file.
// Interval bounds are written in the "08:00:00/17:30:00" text form.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cepro/timespan/schedule"
)

type Config struct {
	Windows []schedule.Window `json:"windows"`
	Tariffs []schedule.Tariff `json:"tariffs"`
}

// Read loads and validates the configuration at the given path.
func Read(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	err = json.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate rejects unknown day specifications. Malformed intervals are
// already rejected during unmarshalling.
func (c Config) Validate() error {
	for _, window := range c.Windows {
		if !window.Days.Valid() {
			return fmt.Errorf("window %s: unknown day specification: %q", window.ID, window.Days)
		}
	}
	return nil
}
