package dns

import "log/slog"

// Reconciler drives every active network service to a desired DNS state,
// one service at a time in host priority order.
type Reconciler struct {
	host   *Host
	strict bool
}

// ReconcilerOption - configures a Reconciler
type ReconcilerOption func(*Reconciler)

// WithStrict - PublicDNS succeeds only when every public server was applied
func WithStrict(strict bool) ReconcilerOption {
	return func(r *Reconciler) {
		r.strict = strict
	}
}

// NewReconciler - creates a Reconciler working on host
func NewReconciler(host *Host, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{host: host}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply sets d on every active service and reads the manual servers back to verify it.
// report is called once per service as soon as it is verified. The first failed host
// interaction aborts the run and leaves the remaining services untouched.
func (r *Reconciler) Apply(d Desired, report func(Outcome)) error {
	services, err := r.host.ActiveServices()
	if err != nil {
		return err
	}
	servers := d.Servers()
	for _, iface := range services {
		if err := r.host.SetServers(iface, servers); err != nil {
			return err
		}
		// verification uses the manual tier only, fallback servers were never set by us
		state, err := r.host.ManualServers(iface)
		if err != nil {
			return err
		}
		ok := d.Satisfied(state, r.strict)
		if !ok {
			slog.Warn("dns state does not match", "interface", iface, "desired", d.String(), "servers", state.Servers)
		}
		report(Outcome{Desired: d, State: state, OK: ok})
	}
	return nil
}

// List reports the effective DNS servers of every active service.
func (r *Reconciler) List(report func(State)) error {
	services, err := r.host.ActiveServices()
	if err != nil {
		return err
	}
	for _, iface := range services {
		state, err := r.host.Resolve(iface)
		if err != nil {
			return err
		}
		report(state)
	}
	return nil
}
