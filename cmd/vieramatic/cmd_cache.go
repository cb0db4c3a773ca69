package main

import (
	"flag"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/colombif/vieramatic/pkg/cache"
)

// runCache prints a summary of the accessory cache document, one line per
// known television.
func runCache(args []string) {
	fs := flag.NewFlagSet("cache", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	_ = fs.Parse(args)

	_, cfg := mustLoadConfig(*configPath)

	store := cache.New(cfg.Cache.Path, zap.NewNop())
	entries := store.Snapshot()
	if len(entries) == 0 {
		fmt.Printf("cache at %s is empty\n", cfg.Cache.Path)
		return
	}

	serials := make([]string, 0, len(entries))
	for serial := range entries {
		serials = append(serials, serial)
	}
	sort.Strings(serials)

	fmt.Printf("cache at %s: %d device(s)\n\n", cfg.Cache.Path, len(entries))
	for _, serial := range serials {
		e := entries[serial]
		enc := ""
		if e.Data.Specs.RequiresEncryption {
			enc = "  encrypted"
		}
		fmt.Printf("%-16s  %-15s  %-24s  %d app(s)%s\n",
			serial, e.Data.IPAddress, e.Data.Specs.FriendlyName, len(e.Apps), enc)
	}
}
