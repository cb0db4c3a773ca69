// Package bridge provides the SDK boundary between the reconciliation core
// and the home-automation host embedding it. The host implements Host; the
// core drives accessory lifecycle through it and never reaches past these
// interfaces.
package bridge

import (
	"context"

	"github.com/google/uuid"
)

// Category classifies a published accessory, using HomeKit category numbering.
type Category int

const (
	CategoryBridge           Category = 2
	CategorySpeaker          Category = 26
	CategoryTelevision       Category = 31
	CategoryAudioReceiver    Category = 34
	CategoryTVSetTopBox      Category = 35
	CategoryTVStreamingStick Category = 36
)

// AccessoryInfo carries the identity of a published accessory.
type AccessoryInfo struct {
	Name         string
	SerialNumber string
	UUID         string
	Category     Category
}

// Accessory is an opaque handle to a host-side accessory. The core only
// creates accessories through the Host factory and hands them back for
// publication or removal; it never inspects them beyond Info.
type Accessory interface {
	Info() AccessoryInfo
}

// Host is the accessory-lifecycle surface of the home-automation runtime.
// The core calls it from the discovery cycle's goroutine.
type Host interface {
	// CachedAccessories enumerates accessories the host restored from its own
	// cache at startup. The core unregisters all of them before publishing,
	// since accessory state is re-derived fresh each cycle.
	CachedAccessories() []Accessory

	// NewAccessory constructs a fresh accessory from identity information.
	NewAccessory(info AccessoryInfo) Accessory

	// PublishExternalAccessories makes the given accessories reachable to
	// controllers.
	PublishExternalAccessories(ctx context.Context, accessories []Accessory) error

	// UnregisterAccessories removes previously registered accessories.
	UnregisterAccessories(ctx context.Context, accessories []Accessory) error
}

// AccessoryID derives the stable accessory UUID for a television serial
// number. The same serial always yields the same UUID, so host cache entries
// and republished accessories line up across restarts even when the set's IP
// address changes.
func AccessoryID(serial string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("viera://"+serial)).String()
}
