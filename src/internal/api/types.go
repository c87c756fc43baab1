package api

import "github.com/maksimkurb/wgconf/src/internal/wgconf"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// FieldsRequest carries raw interface fields keyed by their case-sensitive
// names. Unknown keys are ignored; missing keys are empty.
type FieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required"`
}

// ParseRequest carries configuration file text.
type ParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// HooksRequest carries raw interface fields and the interface name used for %i.
type HooksRequest struct {
	Fields        map[string]string `json:"fields" validate:"required"`
	InterfaceName string            `json:"interface_name,omitempty" validate:"omitempty,max=15"`
}

// PublicKeyRequest carries a private key to derive the public key from.
type PublicKeyRequest struct {
	PrivateKey string `json:"private_key" validate:"required"`
}

// InterfaceResponse describes a validated interface section.
type InterfaceResponse struct {
	Valid     bool             `json:"valid"`
	Interface wgconf.Interface `json:"interface"`
	// Text is the canonical rendering.
	Text string `json:"text"`
	// Checksum is the hex MD5 of Text.
	Checksum string `json:"checksum"`
}

// ParseResponse describes a parsed configuration file.
type ParseResponse struct {
	InterfaceResponse
	// UnknownFields lists [Interface] keys that were ignored.
	UnknownFields []string `json:"unknown_fields"`
	// Sections lists the headers of the other sections in file order.
	Sections []string `json:"sections"`
	// SourceChecksum is the hex MD5 of the submitted text.
	SourceChecksum string `json:"source_checksum"`
}

// HooksResponse holds PostUp/PostDown with %i substituted.
type HooksResponse struct {
	InterfaceName string `json:"interface_name"`
	PostUp        string `json:"post_up"`
	PostDown      string `json:"post_down"`
}

// KeyPairResponse holds a private key and its public key.
type KeyPairResponse struct {
	PrivateKey string `json:"private_key,omitempty"`
	PublicKey  string `json:"public_key"`
}

// HealthResponse reports that the service is up.
type HealthResponse struct {
	Healthy bool        `json:"healthy"`
	Version VersionInfo `json:"version"`
}
