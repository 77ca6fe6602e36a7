package dns

import "log/slog"

// Resolve returns the DNS servers iface actually uses. Manual servers win; only when
// none are set is the system wide resolver state consulted, since it is not scoped
// to a single service.
func (h *Host) Resolve(iface string) (State, error) {
	manual, err := h.ManualServers(iface)
	if err != nil {
		return State{}, err
	}
	if !manual.Unset {
		return manual, nil
	}

	fallback, err := h.ResolverState()
	if err != nil {
		return State{}, err
	}
	if len(fallback) == 0 {
		slog.Debug("no resolver state fallback", "interface", iface)
		return manual, nil
	}
	return State{
		Interface: iface,
		Servers:   fallback,
		Source:    SourceSystemFallback,
	}, nil
}
