package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/colombif/vieramatic/internal/config"
	"github.com/colombif/vieramatic/internal/version"
)

func main() {
	// Subcommand dispatch (before flag.Parse).
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "validate":
			runValidate(os.Args[2:])
			return
		case "probe":
			runProbe(os.Args[2:])
			return
		case "cache":
			runCache(os.Args[2:])
			return
		case "version":
			fmt.Println(version.Info())
			return
		}
	}

	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `vieramatic %s

The reconciliation core runs embedded in a home-automation host; this
binary covers the operator-side diagnostics.

Usage:
  vieramatic <command> [flags]

Commands:
  validate    check every declared device without touching the network
  probe       probe liveness of every declared device
  cache       summarize the accessory cache document
  version     print version information

Each command accepts -config <path> to name the configuration file.
`, version.Short())
}

// mustLoadConfig loads and parses the configuration or exits.
func mustLoadConfig(path string) (*viper.Viper, *config.Config) {
	v, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Parse(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse configuration: %v\n", err)
		os.Exit(1)
	}
	return v, cfg
}
