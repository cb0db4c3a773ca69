package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/colombif/vieramatic/internal/config"
	"github.com/colombif/vieramatic/pkg/probe"
	"github.com/colombif/vieramatic/pkg/setup"
)

// runProbe sweeps the declared devices with the configured liveness probe.
// Exits non-zero when any device is invalid or fails to answer.
func runProbe(args []string) {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	timeout := fs.Duration("timeout", 0, "per-device probe timeout (overrides configuration)")
	_ = fs.Parse(args)

	v, cfg := mustLoadConfig(*configPath)
	if *timeout > 0 {
		cfg.Probe.Timeout = *timeout
	}
	if len(cfg.Devices) == 0 {
		fmt.Fprintln(os.Stderr, "no devices declared")
		os.Exit(1)
	}

	logger, err := config.NewLogger(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	prober := probe.New(cfg.Probe, logger.Named("probe"))

	start := time.Now()
	missed := 0
	for _, decl := range cfg.Devices {
		if err := setup.Validate(decl); err != nil {
			missed++
			fmt.Printf("invalid      %-15s  %v\n", decl.IPAddress, err)
			continue
		}
		if prober.Probe(context.Background(), decl.IPAddress) {
			fmt.Printf("alive        %-15s\n", decl.IPAddress)
		} else {
			missed++
			fmt.Printf("unreachable  %-15s\n", decl.IPAddress)
		}
	}
	fmt.Printf("\nprobed %d device(s) in %s using %s\n",
		len(cfg.Devices), time.Since(start).Round(time.Millisecond), cfg.Probe.Method)

	if missed > 0 {
		os.Exit(1)
	}
}
