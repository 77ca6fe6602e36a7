package dns

import (
	"log/slog"

	"github.com/gravitl/dnsswitch/config"
	"github.com/gravitl/dnsswitch/ncutils"
)

// Host queries and changes DNS settings through networksetup and scutil.
// Every call spawns exactly one command and nothing is cached between calls.
type Host struct {
	runner       ncutils.Runner
	networksetup string
	scutil       string
	sudo         bool
}

// NewHost - creates a Host running commands through runner with the binaries and
// privilege mode of cfg
func NewHost(runner ncutils.Runner, cfg *config.Config) *Host {
	return &Host{
		runner:       runner,
		networksetup: cfg.NetworkSetup,
		scutil:       cfg.Scutil,
		sudo:         cfg.UseSudo(ncutils.IsRoot()),
	}
}

func (h *Host) run(op, iface, name string, args ...string) (string, error) {
	out, err := h.runner.Run(name, args...)
	if err != nil {
		return "", &CollaboratorError{Op: op, Interface: iface, Err: err}
	}
	text, err := decode(out)
	if err != nil {
		return "", &CollaboratorError{Op: op, Interface: iface, Err: err}
	}
	return text, nil
}

// ActiveServices - lists network services that are not disabled, in host priority order
func (h *Host) ActiveServices() ([]string, error) {
	text, err := h.run("list network services", "", h.networksetup, "-listallnetworkservices")
	if err != nil {
		return nil, err
	}
	services := ParseServices(text)
	slog.Debug("active network services", "services", services)
	return services, nil
}

// SetServers - replaces the manual DNS servers of iface, an empty list clears them.
// A nil error only means networksetup accepted the request.
func (h *Host) SetServers(iface string, servers []string) error {
	if len(servers) == 0 {
		servers = []string{ClearSentinel}
	}
	name := h.networksetup
	args := append([]string{"-setdnsservers", iface}, servers...)
	if h.sudo {
		args = append([]string{name}, args...)
		name = "sudo"
	}
	if _, err := h.run("set dns servers", iface, name, args...); err != nil {
		return err
	}
	slog.Info("dns servers set", "interface", iface, "servers", servers)
	return nil
}

// ManualServers - reads the DNS servers explicitly configured on iface
func (h *Host) ManualServers(iface string) (State, error) {
	text, err := h.run("get dns servers", iface, h.networksetup, "-getdnsservers", iface)
	if err != nil {
		return State{}, err
	}
	servers, unset := ParseManualServers(text)
	return State{
		Interface: iface,
		Servers:   servers,
		Source:    SourceManual,
		Unset:     unset,
	}, nil
}

// ResolverState - nameservers of the system wide resolver configuration, deduplicated
func (h *Host) ResolverState() ([]string, error) {
	text, err := h.run("read resolver state", "", h.scutil, "--dns")
	if err != nil {
		return nil, err
	}
	return ParseResolverState(text), nil
}
