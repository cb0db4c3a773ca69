package setup

import (
	"fmt"
	"net"

	"github.com/colombif/vieramatic/pkg/models"
)

// Validate rejects malformed declarations before any network I/O is
// attempted. It is pure and side-effect-free.
func Validate(decl models.DeviceDeclaration) error {
	ip := net.ParseIP(decl.IPAddress)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("%w: %q in %s", ErrInvalidIP, decl.IPAddress, decl)
	}

	if decl.MAC != "" {
		if _, err := net.ParseMAC(decl.MAC); err != nil {
			return fmt.Errorf("%w: %q in %s", ErrInvalidMAC, decl.MAC, decl)
		}
	}

	for _, input := range decl.HDMIInputs {
		if input.ID <= 0 {
			return fmt.Errorf("%w: id %d must be positive in %s", ErrInvalidHDMIInput, input.ID, decl)
		}
		if input.Name == "" {
			return fmt.Errorf("%w: input %d has no name in %s", ErrInvalidHDMIInput, input.ID, decl)
		}
	}

	return nil
}
