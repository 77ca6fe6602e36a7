package dns

import (
	"errors"
	"fmt"
	"slices"
)

// ClearSentinel - networksetup argument that removes every manual DNS server
const ClearSentinel = "empty"

var publicServers = [...]string{
	"1.1.1.1",              // CloudFlare
	"2606:4700:4700::1111", // CloudFlare
	"8.8.4.4",              // Google
	"2001:4860:4860::8844", // Google
}

// PublicServers returns the public resolvers applied by PublicDNS, highest priority first.
func PublicServers() []string {
	return slices.Clone(publicServers[:])
}

// Source tells which host query produced a State
type Source int

const (
	// SourceManual - servers explicitly set on the service
	SourceManual Source = iota
	// SourceSystemFallback - system wide resolver state, used when nothing is set manually
	SourceSystemFallback
)

func (s Source) String() string {
	switch s {
	case SourceManual:
		return "manual"
	case SourceSystemFallback:
		return "dhcp"
	default:
		return "unknown"
	}
}

// MarshalText - renders the source by name in JSON output
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - parses a source name written by MarshalText
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "manual":
		*s = SourceManual
	case "dhcp":
		*s = SourceSystemFallback
	default:
		return fmt.Errorf("unknown dns source %q", text)
	}
	return nil
}

// State - DNS servers observed for one network service
type State struct {
	Interface string   `json:"interface"`
	Servers   []string `json:"servers"`
	Source    Source   `json:"source"`
	// Unset is true when the host reported no manual servers and no fallback applied
	Unset bool `json:"unset"`
}

// Desired - DNS state the reconciler drives every service to
type Desired int

const (
	// PublicDNS - use the built in public resolvers
	PublicDNS Desired = iota
	// ClearToDHCP - drop manual servers so DHCP assigned ones take over
	ClearToDHCP
)

func (d Desired) String() string {
	switch d {
	case PublicDNS:
		return "public"
	case ClearToDHCP:
		return "dhcp"
	default:
		return fmt.Sprintf("Desired(%d)", int(d))
	}
}

// Servers returns the argument list handed to networksetup -setdnsservers
func (d Desired) Servers() []string {
	switch d {
	case PublicDNS:
		return PublicServers()
	default:
		return []string{ClearSentinel}
	}
}

// Satisfied checks a manual state read back after applying d. In strict mode
// PublicDNS requires every public server, otherwise any one of them is enough.
func (d Desired) Satisfied(state State, strict bool) bool {
	switch d {
	case PublicDNS:
		if state.Unset {
			return false
		}
		for _, server := range publicServers {
			present := slices.Contains(state.Servers, server)
			if strict && !present {
				return false
			}
			if !strict && present {
				return true
			}
		}
		return strict
	case ClearToDHCP:
		return state.Unset
	default:
		return false
	}
}

// Outcome - result of reconciling one service
type Outcome struct {
	Desired Desired
	State   State
	OK      bool
}

// CollaboratorError - a host query or command failed, ran but exited non-zero,
// or printed output that could not be decoded
type CollaboratorError struct {
	Op        string
	Interface string
	Err       error
}

func (e *CollaboratorError) Error() string {
	if e.Interface != "" {
		return fmt.Sprintf("%s on %q: %v", e.Op, e.Interface, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// IsCollaboratorError - reports whether err came from a failed host interaction
func IsCollaboratorError(err error) bool {
	var cerr *CollaboratorError
	return errors.As(err, &cerr)
}
