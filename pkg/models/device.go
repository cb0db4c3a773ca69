// Package models defines the shared data model for user-declared television
// sets and the capability snapshots they report.
package models

import "encoding/json"

// DeviceDeclaration is one user-configured television entry. It is immutable
// input for a single setup attempt; the reconciler never writes back into it.
type DeviceDeclaration struct {
	IPAddress         string      `mapstructure:"ip_address" json:"ipAddress"`
	MAC               string      `mapstructure:"mac" json:"mac,omitempty"`
	AppID             string      `mapstructure:"app_id" json:"appId,omitempty"`
	EncKey            string      `mapstructure:"enc_key" json:"encKey,omitempty"`
	FriendlyName      string      `mapstructure:"friendly_name" json:"friendlyName,omitempty"`
	DisableAppSupport bool        `mapstructure:"disable_app_support" json:"disableAppSupport,omitempty"`
	HDMIInputs        []HDMIInput `mapstructure:"hdmi_inputs" json:"hdmiInputs,omitempty"`
}

// HasCredentials reports whether both credential fields are present.
func (d DeviceDeclaration) HasCredentials() bool {
	return d.AppID != "" && d.EncKey != ""
}

// String returns the compact JSON form of the declaration. Rejection messages
// embed it so misconfigured entries are diagnosable without a debugger.
func (d DeviceDeclaration) String() string {
	b, err := json.Marshal(d)
	if err != nil {
		return d.IPAddress
	}
	return string(b)
}

// HDMIInput declares one HDMI port to expose as an input source on the
// published accessory.
type HDMIInput struct {
	ID   int    `mapstructure:"id" json:"id"`
	Name string `mapstructure:"name" json:"name"`
}

// DeviceSpecs is a television's self-reported capability and identity
// snapshot, produced either live or from the accessory cache. JSON tags match
// the cache document, which stores specs verbatim.
type DeviceSpecs struct {
	FriendlyName       string `json:"friendlyName"`
	ModelName          string `json:"modelName"`
	ModelNumber        string `json:"modelNumber"`
	Manufacturer       string `json:"manufacturer"`
	SerialNumber       string `json:"serialNumber"`
	RequiresEncryption bool   `json:"requiresEncryption"`
}

// Empty reports whether the snapshot carries no data at all.
func (s DeviceSpecs) Empty() bool {
	return s == DeviceSpecs{}
}

// App is one installed application reported by a television.
type App struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}
