// Package wgkey is the key codec for WireGuard configuration files.
//
// A Key can only be obtained by parsing its canonical base64 text or by
// generating a fresh one, so a Key value is always 32 bytes of key material.
// The codec never performs cryptographic operations on behalf of the caller
// beyond deriving a public key, which wgtypes does for us.
package wgkey

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"

	"github.com/maksimkurb/wgconf/src/internal/errors"
)

// Len is the size of a WireGuard key in bytes.
const Len = wgtypes.KeyLen

// Key is a validated WireGuard key. Keys are comparable with ==.
type Key struct {
	k wgtypes.Key
}

// Parse decodes the canonical base64 text form of a key.
//
// Text that is not standard padded base64 fails with ErrCodeKeyEncoding;
// text that decodes to anything other than 32 bytes fails with
// ErrCodeKeyLength. Only the canonical form is accepted, so a parsed key
// always renders back to s.
func Parse(s string) (Key, error) {
	// the decoder skips line breaks
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return Key{}, errors.NewKeyEncodingError(fmt.Errorf("illegal line break at input byte %d", i))
	}
	raw, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return Key{}, errors.NewKeyEncodingError(err)
	}
	if len(raw) != Len {
		return Key{}, errors.NewKeyLengthError(len(raw))
	}

	k, err := wgtypes.NewKey(raw)
	if err != nil {
		return Key{}, errors.NewInternalError("failed to build key", err)
	}
	return Key{k: k}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Generate creates a new random private key.
func Generate() (Key, error) {
	k, err := wgtypes.GeneratePrivateKey()
	if err != nil {
		return Key{}, errors.NewInternalError("failed to generate private key", err)
	}
	return Key{k: k}, nil
}

// PublicKey derives the public key for a private key.
func (k Key) PublicKey() Key {
	return Key{k: k.k.PublicKey()}
}

// String returns the canonical base64 encoding of the key.
func (k Key) String() string {
	return k.k.String()
}

// IsZero reports whether k is all zero bytes, either the zero value or the
// parsed all-zero key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
