package setup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/colombif/vieramatic/pkg/cache"
	"github.com/colombif/vieramatic/pkg/models"
	"github.com/colombif/vieramatic/pkg/probe"
)

// Pipeline runs the full per-device setup sequence. One Pipeline serves all
// devices; per-device state lives in the call, so Setup is safe to run
// concurrently for different declarations.
type Pipeline struct {
	store    *cache.Store
	prober   probe.Prober
	factory  ControlFactory
	resolver *Resolver
	logger   *zap.Logger
}

// NewPipeline creates a setup pipeline over the shared cache store.
func NewPipeline(store *cache.Store, prober probe.Prober, factory ControlFactory, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		store:    store,
		prober:   prober,
		factory:  factory,
		resolver: NewResolver(store, logger),
		logger:   logger,
	}
}

// Setup takes one declared device through validation, liveness probing,
// specs resolution, session negotiation, and bootstrap. It returns a
// publishable Device, or the rejection of the first stage that failed.
func (p *Pipeline) Setup(ctx context.Context, decl models.DeviceDeclaration) (*Device, error) {
	if err := Validate(decl); err != nil {
		return nil, err
	}

	reachable := p.prober.Probe(ctx, decl.IPAddress)
	if !reachable {
		p.logger.Debug("liveness probe missed", zap.String("ip", decl.IPAddress))
	}

	control := p.factory(decl)

	resolved, err := p.resolver.Resolve(ctx, control, decl.IPAddress, reachable)
	if err != nil {
		return nil, err
	}

	// A declared friendly name overrides whatever the device or cache said.
	// The override applies to the published accessory only; the cache keeps
	// the device-reported name, so dropping the override later does not
	// leave a stale name in offline fallbacks.
	specs := resolved
	if decl.FriendlyName != "" {
		specs.FriendlyName = decl.FriendlyName
	}

	if specs.RequiresEncryption {
		if err := Negotiate(ctx, control, decl); err != nil {
			return nil, err
		}
	}

	apps, err := p.bootstrap(ctx, control, decl, resolved)
	if err != nil {
		return nil, err
	}

	return &Device{
		Declaration: decl,
		Specs:       specs,
		Apps:        apps,
		Control:     control,
	}, nil
}

// bootstrap loads or creates the cache entry keyed by the device serial.
// First contact requires the set to report itself powered on, since app
// listing is unreliable in standby, and an app listing failure on first
// contact leaves no entry behind. Known devices serve apps from the cache
// and refresh their data snapshot in memory.
func (p *Pipeline) bootstrap(ctx context.Context, control DeviceControl, decl models.DeviceDeclaration, specs models.DeviceSpecs) ([]models.App, error) {
	entry := p.store.Get(specs.SerialNumber)
	if !entry.Empty() {
		entry.Data = cache.Data{IPAddress: decl.IPAddress, Specs: specs}
		p.store.Put(specs.SerialNumber, entry)
		return entry.Apps, nil
	}

	on, err := control.IsTurnedOn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: power state query for %s failed: %v", ErrPoweredOff, decl.IPAddress, err)
	}
	if !on {
		return nil, fmt.Errorf("%w: %s must be powered on for its first setup", ErrPoweredOff, decl.IPAddress)
	}

	var apps []models.App
	if !decl.DisableAppSupport {
		apps, err = control.GetApps(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAppListing, decl.IPAddress, err)
		}
	}

	p.store.Put(specs.SerialNumber, cache.Entry{
		Data: cache.Data{IPAddress: decl.IPAddress, Specs: specs},
		Apps: apps,
	})
	if err := p.store.Save(); err != nil {
		// The device still works for this process; only restart recovery
		// is degraded.
		p.logger.Error("failed to persist accessory cache",
			zap.String("serial", specs.SerialNumber),
			zap.Error(err),
		)
	}

	p.logger.Info("first-time setup complete",
		zap.String("ip", decl.IPAddress),
		zap.String("serial", specs.SerialNumber),
		zap.Int("apps", len(apps)),
	)
	return apps, nil
}
