package probe

import (
	"context"
	"runtime"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"go.uber.org/zap"
)

// Compile-time interface guard.
var _ Prober = (*ICMPProber)(nil)

// ICMPProber pings a device using ICMP echo requests.
type ICMPProber struct {
	timeout time.Duration
	count   int
	logger  *zap.Logger
}

// NewICMPProber creates a new ICMP prober.
func NewICMPProber(cfg Config, logger *zap.Logger) *ICMPProber {
	return &ICMPProber{
		timeout: cfg.Timeout,
		count:   cfg.Count,
		logger:  logger,
	}
}

// Probe pings the address once and reports whether any reply came back.
func (p *ICMPProber) Probe(ctx context.Context, address string) bool {
	pinger, err := probing.NewPinger(address)
	if err != nil {
		p.logger.Debug("failed to create pinger", zap.String("address", address), zap.Error(err))
		return false
	}

	pinger.Count = p.count
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(runtime.GOOS == "windows")

	// Run with context for cancellation support.
	done := make(chan struct{})
	go func() {
		defer close(done)
		if runErr := pinger.Run(); runErr != nil {
			p.logger.Debug("ping failed", zap.String("address", address), zap.Error(runErr))
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		pinger.Stop()
		return false
	}

	return pinger.Statistics().PacketsRecv > 0
}
