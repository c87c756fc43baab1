// Package hooks expands PostUp/PostDown command templates.
//
// The interface section stores hook commands verbatim; expansion happens only
// here, when a new configuration is generated from settings templates or when
// showing the commands wg-quick would actually run.
package hooks

import (
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/wgconf/src/internal/errors"
)

// Template variables available inside {{ }} tags.
const (
	TmplInterface  = "interface"
	TmplAddress    = "address"
	TmplNetwork    = "network"
	TmplListenPort = "listen_port"
)

// Vars holds the values substituted into hook templates.
type Vars struct {
	Interface  string
	Address    netip.Prefix
	ListenPort uint16
}

func (v Vars) lookup(tag string) (string, bool) {
	switch strings.TrimSpace(tag) {
	case TmplInterface:
		return v.Interface, true
	case TmplAddress:
		return v.Address.String(), true
	case TmplNetwork:
		return v.Address.Masked().String(), true
	case TmplListenPort:
		return strconv.FormatUint(uint64(v.ListenPort), 10), true
	default:
		return "", false
	}
}

// Expand substitutes {{interface}}, {{address}}, {{network}} and
// {{listen_port}} in template. Unknown tags and unterminated tags are
// validation errors.
func Expand(template string, vars Vars) (string, error) {
	if template == "" {
		return "", nil
	}

	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return "", errors.NewValidationFailed(fmt.Sprintf("invalid hook template %q", template))
	}

	return t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		value, ok := vars.lookup(tag)
		if !ok {
			return 0, errors.NewValidationFailed(fmt.Sprintf("unknown hook template variable %q", strings.TrimSpace(tag)))
		}
		return w.Write([]byte(value))
	})
}

// ExpandInterfaceName replaces every %i in command with the interface name,
// the way wg-quick does before running a hook.
func ExpandInterfaceName(command, iface string) string {
	return strings.ReplaceAll(command, "%i", iface)
}
