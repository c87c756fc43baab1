package wgconf

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/maksimkurb/wgconf/src/internal/errors"
	"github.com/maksimkurb/wgconf/src/internal/wgkey"
)

// InterfaceTag is the section header of an interface section.
const InterfaceTag = "[Interface]"

// Field names of the interface section. Matching is case-sensitive.
const (
	FieldPrivateKey = "PrivateKey"
	FieldAddress    = "Address"
	FieldListenPort = "ListenPort"
	FieldPostUp     = "PostUp"
	FieldPostDown   = "PostDown"
)

// Validation messages returned inside VALIDATION_ERROR errors.
const (
	MsgZeroPort      = "port can't be 0"
	MsgInvalidPort   = "invalid port raw value"
	MsgAddressNoMask = "address must be address with mask (e.g. 10.0.0.1/8)"
)

// Interface is a validated [Interface] section.
//
// Values are immutable and comparable: two interfaces built from the same
// field values are ==, regardless of how they were constructed.
type Interface struct {
	privateKey wgkey.Key
	address    netip.Prefix
	listenPort uint16
	postUp     string
	postDown   string
}

// New creates an Interface from already parsed values.
//
// The address is the interface address together with its mask
// (e.g. 10.0.0.1/8). The listen port must not be 0.
func New(privateKey wgkey.Key, address netip.Prefix, listenPort uint16, postUp, postDown string) (Interface, error) {
	if !address.IsValid() {
		return Interface{}, errors.NewValidationFailed(MsgAddressNoMask)
	}
	if listenPort == 0 {
		return Interface{}, errors.NewValidationFailed(MsgZeroPort)
	}

	return Interface{
		privateKey: privateKey,
		address:    address,
		listenPort: listenPort,
		postUp:     postUp,
		postDown:   postDown,
	}, nil
}

// FromRawValues creates an Interface from raw string values.
//
// Fields are checked in the order key, address, port and the first failure
// is returned. Key errors are returned as produced by wgkey.Parse; any
// address parse failure is reported with MsgAddressNoMask.
func FromRawValues(privateKey, address, listenPort, postUp, postDown string) (Interface, error) {
	key, err := wgkey.Parse(privateKey)
	if err != nil {
		return Interface{}, err
	}

	prefix, err := netip.ParsePrefix(address)
	if err != nil {
		return Interface{}, errors.NewValidationFailed(MsgAddressNoMask)
	}

	// Plain decimal digits only; a sign such as "+51820" is invalid.
	port, err := strconv.ParseUint(listenPort, 10, 16)
	if err != nil {
		return Interface{}, errors.NewValidationFailed(MsgInvalidPort)
	}

	return New(key, prefix, uint16(port), postUp, postDown)
}

// PrivateKey returns the interface private key.
func (i Interface) PrivateKey() wgkey.Key {
	return i.privateKey
}

// Address returns the interface address with its mask.
func (i Interface) Address() netip.Prefix {
	return i.address
}

// ListenPort returns the UDP listen port. Never 0.
func (i Interface) ListenPort() uint16 {
	return i.listenPort
}

// PostUp returns the command run after the interface is brought up, verbatim.
func (i Interface) PostUp() string {
	return i.postUp
}

// PostDown returns the command run after the interface is torn down, verbatim.
func (i Interface) PostDown() string {
	return i.postDown
}

// Equal reports whether both interfaces hold the same field values.
func (i Interface) Equal(other Interface) bool {
	return i == other
}

// GoString implements fmt.GoStringer so %#v prints every field.
func (i Interface) GoString() string {
	return fmt.Sprintf("wgconf.Interface{PrivateKey:%q, Address:%q, ListenPort:%d, PostUp:%q, PostDown:%q}",
		i.privateKey.String(), i.address.String(), i.listenPort, i.postUp, i.postDown)
}
