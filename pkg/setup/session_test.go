package setup

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/colombif/vieramatic/pkg/models"
)

func TestNegotiate_missing_credentials_makes_no_network_call(t *testing.T) {
	tests := []struct {
		name string
		decl models.DeviceDeclaration
	}{
		{"no credentials", models.DeviceDeclaration{IPAddress: "10.0.0.7"}},
		{"app id only", models.DeviceDeclaration{IPAddress: "10.0.0.7", AppID: "app-1"}},
		{"enc key only", models.DeviceDeclaration{IPAddress: "10.0.0.7", EncKey: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			control := &fakeControl{}
			err := Negotiate(context.Background(), control, tt.decl)
			if !errors.Is(err, ErrMissingCredentials) {
				t.Fatalf("Negotiate = %v, want ErrMissingCredentials", err)
			}
			if control.deriveCalls != 0 || control.sessionCalls != 0 {
				t.Errorf("network calls made: derive = %d, session = %d, want 0 each",
					control.deriveCalls, control.sessionCalls)
			}
		})
	}
}

func TestNegotiate_derives_key_then_requests_session(t *testing.T) {
	control := &fakeControl{}
	decl := models.DeviceDeclaration{IPAddress: "10.0.0.7", AppID: "app-1", EncKey: "secret-key"}

	if err := Negotiate(context.Background(), control, decl); err != nil {
		t.Fatalf("Negotiate: %v", err)
	}
	if control.derivedKey != "secret-key" {
		t.Errorf("derived key = %q, want secret-key", control.derivedKey)
	}
	if control.sessionCalls != 1 {
		t.Errorf("session calls = %d, want 1", control.sessionCalls)
	}
}

func TestNegotiate_handshake_failure_names_device(t *testing.T) {
	control := &fakeControl{sessionErr: errors.New("challenge rejected")}
	decl := models.DeviceDeclaration{IPAddress: "10.0.0.7", AppID: "app-1", EncKey: "secret-key"}

	err := Negotiate(context.Background(), control, decl)
	if err == nil {
		t.Fatal("Negotiate = nil, want error")
	}
	if !strings.Contains(err.Error(), "10.0.0.7") {
		t.Errorf("error %q does not name the device address", err)
	}
	if !errors.Is(err, control.sessionErr) {
		t.Errorf("error %q does not wrap the handshake cause", err)
	}
}
