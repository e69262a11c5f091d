package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/civil"

	"github.com/cepro/timespan/config"
	"github.com/cepro/timespan/schedule"
)

// Prints the concrete date-time intervals that the configured schedule
// produces for today, and the tariff rates in force right now.
func main() {

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "timespan.json", "path to the schedule configuration file")
	flag.Parse()

	cfg, err := config.Read(*configPath)
	if err != nil {
		slog.Error("Failed to read config", "error", err)
		return
	}
	slog.Info("Loaded schedule", "windows", len(cfg.Windows), "tariffs", len(cfg.Tariffs))

	now := time.Now()
	today := civil.DateOf(now)
	localNow := civil.DateTimeOf(now)

	for _, window := range cfg.Windows {
		if !window.AppliesOn(today) {
			slog.Debug("Window does not apply today", "id", window.ID, "days", window.Days)
			continue
		}
		occurrence, err := window.Occurrence(today)
		if err != nil {
			slog.Warn("Window has an unbounded side and cannot be anchored", "id", window.ID, "times", window.Times.String(), "error", err)
			continue
		}
		slog.Info("Window occurs today", "id", window.ID, "interval", occurrence.String(), "active", window.Contains(localNow))
	}

	rate, found := schedule.FirstRate(localNow, cfg.Tariffs)
	if found {
		slog.Info("Tariff rate in force", "rate", rate)
	} else {
		slog.Info("No tariff rate in force")
	}
	slog.Info("Total of applicable rates", "total", schedule.SumRates(localNow, cfg.Tariffs))
}
