package setup

import (
	"errors"
	"strings"
	"testing"

	"github.com/colombif/vieramatic/pkg/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		decl    models.DeviceDeclaration
		wantErr error
	}{
		{
			name: "minimal valid declaration",
			decl: models.DeviceDeclaration{IPAddress: "192.168.1.40"},
		},
		{
			name: "valid with mac",
			decl: models.DeviceDeclaration{IPAddress: "192.168.1.40", MAC: "aa:bb:cc:dd:ee:ff"},
		},
		{
			name: "valid with hdmi inputs",
			decl: models.DeviceDeclaration{
				IPAddress:  "192.168.1.40",
				HDMIInputs: []models.HDMIInput{{ID: 1, Name: "Receiver"}, {ID: 2, Name: "Console"}},
			},
		},
		{
			name:    "empty address",
			decl:    models.DeviceDeclaration{},
			wantErr: ErrInvalidIP,
		},
		{
			name:    "hostname instead of address",
			decl:    models.DeviceDeclaration{IPAddress: "tv.local"},
			wantErr: ErrInvalidIP,
		},
		{
			name:    "ipv6 address rejected",
			decl:    models.DeviceDeclaration{IPAddress: "fe80::1"},
			wantErr: ErrInvalidIP,
		},
		{
			name:    "malformed mac",
			decl:    models.DeviceDeclaration{IPAddress: "192.168.1.40", MAC: "not-a-mac"},
			wantErr: ErrInvalidMAC,
		},
		{
			name: "hdmi input with zero id",
			decl: models.DeviceDeclaration{
				IPAddress:  "192.168.1.40",
				HDMIInputs: []models.HDMIInput{{ID: 0, Name: "Receiver"}},
			},
			wantErr: ErrInvalidHDMIInput,
		},
		{
			name: "hdmi input with no name",
			decl: models.DeviceDeclaration{
				IPAddress:  "192.168.1.40",
				HDMIInputs: []models.HDMIInput{{ID: 1}},
			},
			wantErr: ErrInvalidHDMIInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.decl)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_error_embeds_declaration(t *testing.T) {
	decl := models.DeviceDeclaration{IPAddress: "999.1.1.1", FriendlyName: "Lounge TV"}
	err := Validate(decl)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), `"999.1.1.1"`) {
		t.Errorf("error %q does not name the offending address", err)
	}
	if !strings.Contains(err.Error(), "Lounge TV") {
		t.Errorf("error %q does not embed the serialized declaration", err)
	}
}
