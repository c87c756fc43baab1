// Package wgconf models the [Interface] section of a WireGuard configuration
// file.
//
// A section moves through two phases: raw text fields, then a validated
// Interface. There is no way to obtain a partially valid Interface; every
// constructor either returns a fully checked value or an error.
//
// # Construction
//
//   - New takes already parsed values (wgkey.Key, netip.Prefix) and only
//     checks that the listen port is not 0.
//   - FromRawValues parses each raw string (key, then address, then port)
//     and reports the first failure.
//   - FromRawFields and FromRawPairs accept the field mapping produced by a
//     file splitter. Unknown keys are ignored and missing keys count as empty
//     values. For repeated keys in FromRawPairs the last one wins.
//
// # Rendering
//
// Interface.String renders the canonical form:
//
//	[Interface]
//	PrivateKey = yAnz5TF+lXXJte14tji3zlMNq+hd2rYUIgJBgB3fBmk=
//	Address = 10.0.0.1/24
//	ListenPort = 51820
//	PostUp = iptables -A
//	PostDown = iptables -D
//
// followed by a blank line. Feeding the rendered fields back through
// FromRawPairs yields an equal Interface as long as the hook commands are
// single lines without surrounding whitespace, which CheckLines verifies.
// The constructors keep hooks verbatim; Document.Build and UnmarshalJSON
// apply CheckLines.
//
// # Errors
//
// Value errors use errors.ErrCodeValidation with one of the Msg* messages.
// Key errors come straight from wgkey and keep their own codes.
package wgconf
