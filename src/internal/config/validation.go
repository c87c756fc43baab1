package config

import (
	"fmt"
	"net"
	"net/netip"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/wgconf/src/internal/hooks"
)

// Linux limits interface names to IFNAMSIZ-1 bytes; wg-quick uses the same set.
var ifaceNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_=+.-]{1,15}$`)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "cidr":
		return "must be address with mask (e.g. 10.0.0.1/24)"
	case "iface_name":
		return "must be 1-15 characters of [a-zA-Z0-9_=+.-]"
	case "ip_or_empty":
		return "must be a valid IP address (IPv6 must be in square brackets, e.g., [::1]) or empty"
	case "hook_template":
		return "must only use {{interface}}, {{address}}, {{network}} and {{listen_port}} variables"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // Section the field belongs to (e.g. "template")
	FieldPath string // Dot-notation field path (e.g. "template.address")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("ip_or_empty", validateIPOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("iface_name", validateIfaceName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("hook_template", validateHookTemplate); err != nil {
		panic(err)
	}

	// Report field names from the "toml" tag, or "json" for API request types
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: IP address or empty (IPv6 must be in square brackets)
func validateIPOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return validateIPAddress(value)
}

// validateIPAddress validates IP address with IPv6 in square brackets
func validateIPAddress(value string) bool {
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		addr := strings.Trim(value, "[]")
		// Allow [::] for dual-stack
		if addr == "::" {
			return true
		}
		ip := net.ParseIP(addr)
		return ip != nil && ip.To4() == nil
	}

	// Without brackets, must be IPv4
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() != nil
}

// Custom validator: network interface name
func validateIfaceName(fl validator.FieldLevel) bool {
	return ifaceNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: hook command template that expands without errors
func validateHookTemplate(fl validator.FieldLevel) bool {
	_, err := hooks.Expand(fl.Field().String(), hooks.Vars{
		Interface:  "wg0",
		Address:    netip.MustParsePrefix("10.0.0.1/24"),
		ListenPort: 51820,
	})
	return err == nil
}
