package main

import (
	"fmt"
	"os"

	"linkpulse/bench/internal/attack"
	"linkpulse/bench/internal/config"
	"linkpulse/bench/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var codes []string
	if cfg.BenchType != attack.TypeCreate {
		codes, err = seed.Run(&seed.Config{
			BaseURL:            cfg.BaseURL,
			Count:              cfg.SeedCount,
			BatchSize:          cfg.BatchSize,
			OwnerID:            cfg.OwnerID,
			BypassSecret:       cfg.RateLimitBypass,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			Timeout:            cfg.SeedTimeout,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		Codes:              codes,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		AnalyticsRatio:     cfg.AnalyticsRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	})
}
