// Package setup turns one user-declared television into a ready-to-publish
// accessory. The pipeline is a sequential state machine: declaration
// validation, liveness probing, specs resolution with cache fallback,
// session negotiation for encrypted sets, and first-contact bootstrap.
// Every stage fails with a descriptive, device-identifying error; a
// rejection abandons only that device, never the process.
package setup

import (
	"context"
	"errors"

	"github.com/colombif/vieramatic/pkg/bridge"
	"github.com/colombif/vieramatic/pkg/models"
)

// Rejection errors, one per failure class.
var (
	ErrInvalidIP          = errors.New("invalid ip address")
	ErrInvalidMAC         = errors.New("invalid mac address")
	ErrInvalidHDMIInput   = errors.New("invalid hdmi input")
	ErrUnreachable        = errors.New("device unreachable")
	ErrEncryptedOffline   = errors.New("encrypted device cannot be set up offline")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrPoweredOff         = errors.New("device not powered on")
	ErrAppListing         = errors.New("app listing failed")
)

// DeviceControl is the transport handle for one television. Implementations
// wrap the SOAP control protocol and its crypto; this package only sequences
// calls against it.
type DeviceControl interface {
	GetSpecs(ctx context.Context) (models.DeviceSpecs, error)
	GetApps(ctx context.Context) ([]models.App, error)
	IsTurnedOn(ctx context.Context) (bool, error)
	DeriveSessionKey(key string)
	RequestSessionID(ctx context.Context) error
}

// ControlFactory builds the transport handle for a declared device.
type ControlFactory func(decl models.DeviceDeclaration) DeviceControl

// Device is the product of a successful setup: a live control session bound
// to its resolved specs, app list, and originating declaration.
type Device struct {
	Declaration models.DeviceDeclaration
	Specs       models.DeviceSpecs
	Apps        []models.App
	Control     DeviceControl
}

// AccessoryInfo returns the host-facing identity of the device.
func (d *Device) AccessoryInfo() bridge.AccessoryInfo {
	return bridge.AccessoryInfo{
		Name:         d.Specs.FriendlyName,
		SerialNumber: d.Specs.SerialNumber,
		UUID:         bridge.AccessoryID(d.Specs.SerialNumber),
		Category:     bridge.CategoryTelevision,
	}
}
