package setup

import (
	"context"
	"fmt"

	"github.com/colombif/vieramatic/pkg/models"
)

// Negotiate establishes the encrypted control session for a device whose
// specs require it. When the declaration lacks credentials it fails before
// any network call is made. Handshake failures are never retried here.
func Negotiate(ctx context.Context, control DeviceControl, decl models.DeviceDeclaration) error {
	if !decl.HasCredentials() {
		return fmt.Errorf("%w: %s requires both app_id and encryption_key, see %s",
			ErrMissingCredentials, decl.IPAddress, decl)
	}

	control.DeriveSessionKey(decl.EncKey)
	if err := control.RequestSessionID(ctx); err != nil {
		return fmt.Errorf("session handshake with %s failed: %w", decl.IPAddress, err)
	}
	return nil
}
