package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/colombif/vieramatic/pkg/setup"
)

// runValidate checks every declared device offline and reports per-device
// results. Exits non-zero when any declaration is rejected.
func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	_ = fs.Parse(args)

	_, cfg := mustLoadConfig(*configPath)
	if len(cfg.Devices) == 0 {
		fmt.Fprintln(os.Stderr, "no devices declared")
		os.Exit(1)
	}

	failed := 0
	for _, decl := range cfg.Devices {
		if err := setup.Validate(decl); err != nil {
			failed++
			fmt.Printf("invalid  %-15s  %v\n", decl.IPAddress, err)
			continue
		}
		fmt.Printf("ok       %-15s\n", decl.IPAddress)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d declarations invalid\n", failed, len(cfg.Devices))
		os.Exit(1)
	}
}
