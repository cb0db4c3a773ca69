// Package platform drives discovery cycles over the declared device list.
// Accessories the host restored from its own cache are cleared first; the
// devices that survive setup are published in one batch.
package platform

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/colombif/vieramatic/pkg/bridge"
	"github.com/colombif/vieramatic/pkg/models"
	"github.com/colombif/vieramatic/pkg/setup"
)

// Platform reconciles the declared device list against the host each time
// the host signals readiness.
type Platform struct {
	host     bridge.Host
	pipeline *setup.Pipeline
	devices  []models.DeviceDeclaration
	logger   *zap.Logger
}

// New creates a platform over the host and the per-device setup pipeline.
func New(host bridge.Host, pipeline *setup.Pipeline, devices []models.DeviceDeclaration, logger *zap.Logger) *Platform {
	return &Platform{
		host:     host,
		pipeline: pipeline,
		devices:  devices,
		logger:   logger,
	}
}

// Discover runs one reconciliation cycle. Every declared device is set up
// independently and concurrently; a rejection is logged and skipped, never
// fatal to the cycle. The returned error reports host publication failure
// only.
func (p *Platform) Discover(ctx context.Context) error {
	// Accessory state is re-derived fresh each cycle, so whatever the host
	// restored from its cache is stale and must go first.
	if cached := p.host.CachedAccessories(); len(cached) > 0 {
		if err := p.host.UnregisterAccessories(ctx, cached); err != nil {
			p.logger.Warn("failed to unregister cached accessories",
				zap.Int("count", len(cached)),
				zap.Error(err),
			)
		} else {
			p.logger.Info("unregistered cached accessories", zap.Int("count", len(cached)))
		}
	}

	type outcome struct {
		decl models.DeviceDeclaration
		dev  *setup.Device
		err  error
	}
	outcomes := make([]outcome, len(p.devices))

	var wg sync.WaitGroup
	for i, decl := range p.devices {
		wg.Add(1)
		go func(i int, decl models.DeviceDeclaration) {
			defer wg.Done()
			dev, err := p.pipeline.Setup(ctx, decl)
			outcomes[i] = outcome{decl: decl, dev: dev, err: err}
		}(i, decl)
	}
	wg.Wait()

	accessories := make([]bridge.Accessory, 0, len(outcomes))
	for _, o := range outcomes {
		if o.err != nil {
			deviceSetups.WithLabelValues("rejected").Inc()
			p.logger.Error("device setup rejected",
				zap.String("ip", o.decl.IPAddress),
				zap.Error(o.err),
			)
			continue
		}
		deviceSetups.WithLabelValues("published").Inc()
		accessories = append(accessories, p.host.NewAccessory(o.dev.AccessoryInfo()))
		p.logger.Info("device ready",
			zap.String("ip", o.decl.IPAddress),
			zap.String("name", o.dev.Specs.FriendlyName),
			zap.String("serial", o.dev.Specs.SerialNumber),
			zap.Int("apps", len(o.dev.Apps)),
		)
	}

	if len(accessories) == 0 {
		p.logger.Warn("no devices ready to publish", zap.Int("declared", len(p.devices)))
		return nil
	}

	if err := p.host.PublishExternalAccessories(ctx, accessories); err != nil {
		return fmt.Errorf("publish accessories: %w", err)
	}
	p.logger.Info("discovery cycle complete",
		zap.Int("published", len(accessories)),
		zap.Int("declared", len(p.devices)),
	)
	return nil
}
