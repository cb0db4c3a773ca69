package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ControlPort is the TCP port Viera televisions expose their control
// endpoint on.
const ControlPort = 55000

// Compile-time interface guard.
var _ Prober = (*TCPProber)(nil)

// TCPProber tests connectivity by dialing the television's control port.
// Useful on networks where ICMP is filtered or needs privileges.
type TCPProber struct {
	port    int
	timeout time.Duration
	logger  *zap.Logger
}

// NewTCPProber creates a new TCP prober.
func NewTCPProber(cfg Config, logger *zap.Logger) *TCPProber {
	port := cfg.Port
	if port == 0 {
		port = ControlPort
	}
	return &TCPProber{
		port:    port,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Probe dials address on the configured port and reports whether the
// connection was accepted.
func (p *TCPProber) Probe(ctx context.Context, address string) bool {
	target := net.JoinHostPort(address, strconv.Itoa(p.port))

	// Use a dialer with context for clean cancellation.
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		p.logger.Debug("tcp probe failed", zap.String("target", target), zap.Error(err))
		return false
	}
	conn.Close()
	return true
}
