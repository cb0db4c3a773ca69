package setup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/colombif/vieramatic/pkg/cache"
	"github.com/colombif/vieramatic/pkg/models"
)

// Resolver determines a device's capability specs, preferring a live fetch
// and falling back to the cache when the device gives no answer.
type Resolver struct {
	store  *cache.Store
	logger *zap.Logger
}

// NewResolver creates a resolver over the shared cache store.
func NewResolver(store *cache.Store, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve returns the specs for the device at address. reachable carries the
// liveness probe result; a probe miss is only fatal when the cache holds
// nothing for the address either.
func (r *Resolver) Resolve(ctx context.Context, control DeviceControl, address string, reachable bool) (models.DeviceSpecs, error) {
	// The serial number is unknown at this stage, so the cache is scanned by
	// the declared address. Address is not a stable identity (DHCP); serial
	// number becomes the key once specs are resolved.
	cached, _ := r.store.SpecsForAddress(address)

	if !reachable && cached.Empty() {
		return models.DeviceSpecs{}, fmt.Errorf(
			"%w: %s did not answer and has never been seen before, verify the TV is powered on and connected to the network",
			ErrUnreachable, address)
	}

	live, err := control.GetSpecs(ctx)
	if err == nil && !live.Empty() {
		// Live specs always win over cache.
		return live, nil
	}
	r.logger.Warn("no live specs from device, trying cache",
		zap.String("ip", address),
		zap.Error(err),
	)

	if cached.Empty() {
		return models.DeviceSpecs{}, fmt.Errorf(
			"%w: %s returned no specs and nothing is cached for it", ErrUnreachable, address)
	}
	if cached.RequiresEncryption {
		// The session handshake needs a live round-trip that cache cannot
		// replay, so an encrypted set must answer before it can be set up.
		return models.DeviceSpecs{}, fmt.Errorf(
			"%w: %s requires encryption, wake it and try again", ErrEncryptedOffline, address)
	}

	cacheFallbacks.Inc()
	r.logger.Info("using cached specs",
		zap.String("ip", address),
		zap.String("serial", cached.SerialNumber),
	)
	return cached, nil
}
