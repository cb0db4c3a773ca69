// Package testutil provides shared test fixtures.
package testutil

import "github.com/colombif/vieramatic/pkg/models"

// NewDeclaration returns a DeviceDeclaration with sensible defaults, suitable
// for test fixtures. Override individual fields through options.
func NewDeclaration(opts ...func(*models.DeviceDeclaration)) models.DeviceDeclaration {
	d := models.DeviceDeclaration{
		IPAddress: "192.168.1.40",
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithIP sets the declared address.
func WithIP(ip string) func(*models.DeviceDeclaration) {
	return func(d *models.DeviceDeclaration) { d.IPAddress = ip }
}

// WithMAC sets the declared hardware address.
func WithMAC(mac string) func(*models.DeviceDeclaration) {
	return func(d *models.DeviceDeclaration) { d.MAC = mac }
}

// WithCredentials sets both credential fields.
func WithCredentials(appID, encKey string) func(*models.DeviceDeclaration) {
	return func(d *models.DeviceDeclaration) {
		d.AppID = appID
		d.EncKey = encKey
	}
}

// WithFriendlyName sets the display-name override.
func WithFriendlyName(name string) func(*models.DeviceDeclaration) {
	return func(d *models.DeviceDeclaration) { d.FriendlyName = name }
}

// WithoutApps disables application-list discovery.
func WithoutApps() func(*models.DeviceDeclaration) {
	return func(d *models.DeviceDeclaration) { d.DisableAppSupport = true }
}

// WithHDMIInputs sets the declared HDMI inputs.
func WithHDMIInputs(inputs ...models.HDMIInput) func(*models.DeviceDeclaration) {
	return func(d *models.DeviceDeclaration) { d.HDMIInputs = inputs }
}

// NewSpecs returns a DeviceSpecs snapshot with sensible defaults.
func NewSpecs(opts ...func(*models.DeviceSpecs)) models.DeviceSpecs {
	s := models.DeviceSpecs{
		FriendlyName: "Living Room TV",
		ModelName:    "Panasonic VIErA TX-50EX750",
		ModelNumber:  "TX-50EX750",
		Manufacturer: "Panasonic",
		SerialNumber: "1A2B3C4D5E",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSerial sets the serial number.
func WithSerial(serial string) func(*models.DeviceSpecs) {
	return func(s *models.DeviceSpecs) { s.SerialNumber = serial }
}

// WithName sets the reported friendly name.
func WithName(name string) func(*models.DeviceSpecs) {
	return func(s *models.DeviceSpecs) { s.FriendlyName = name }
}

// WithEncryption marks the specs as requiring an encrypted session.
func WithEncryption() func(*models.DeviceSpecs) {
	return func(s *models.DeviceSpecs) { s.RequiresEncryption = true }
}

// Apps returns a small fixed application list.
func Apps() []models.App {
	return []models.App{
		{Name: "Netflix", ID: "0010000200000001"},
		{Name: "YouTube", ID: "0070000200170001"},
	}
}
