// Package probe answers one question: does a television respond on the
// network right now. A miss is advisory rather than fatal, since a powered
// off set can still be resolved from cached state.
package probe

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Probe methods selectable through configuration.
const (
	MethodICMP = "icmp"
	MethodTCP  = "tcp"
)

// Prober reports whether the device at address currently answers.
type Prober interface {
	Probe(ctx context.Context, address string) bool
}

// Config holds the probe module configuration.
type Config struct {
	Method  string        `mapstructure:"method"`
	Timeout time.Duration `mapstructure:"timeout"`
	Count   int           `mapstructure:"count"`
	Port    int           `mapstructure:"port"`
}

// DefaultConfig returns the default configuration for the probe module.
func DefaultConfig() Config {
	return Config{
		Method:  MethodICMP,
		Timeout: 2 * time.Second,
		Count:   1,
		Port:    ControlPort,
	}
}

// New returns the prober for cfg.Method. Unknown methods fall back to ICMP.
func New(cfg Config, logger *zap.Logger) Prober {
	switch cfg.Method {
	case MethodTCP:
		return NewTCPProber(cfg, logger)
	default:
		return NewICMPProber(cfg, logger)
	}
}
