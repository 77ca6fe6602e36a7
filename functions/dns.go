package functions

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gravitl/dnsswitch/config"
	"github.com/gravitl/dnsswitch/dns"
	"github.com/gravitl/dnsswitch/dns/cache"
	"github.com/gravitl/dnsswitch/ncutils"
)

// DNSMode - what the dns command does
type DNSMode int

const (
	// EnablePublic - switch every active service to the public resolvers
	EnablePublic DNSMode = iota
	// ResetToDHCP - drop manual servers on every active service
	ResetToDHCP
	// ListCurrent - print the effective servers of every active service
	ListCurrent
)

// DNSRequest - options of a dns command run
type DNSRequest struct {
	Mode DNSMode
	// JSON prints listings as JSON
	JSON bool
	// Strict requires every public server to be set
	Strict bool
}

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	warnColor = color.New(color.FgRed).SprintFunc()
)

// DNS - runs req against the host with the current configuration
func DNS(req DNSRequest) error {
	return runDNS(os.Stdout, ncutils.ExecRunner{}, &config.Current, req)
}

func runDNS(out io.Writer, runner ncutils.Runner, cfg *config.Config, req DNSRequest) error {
	strict := req.Strict || cfg.Strict
	reconciler := dns.NewReconciler(dns.NewHost(runner, cfg), dns.WithStrict(strict))

	switch req.Mode {
	case ListCurrent:
		return listDNS(out, reconciler, req.JSON)
	case EnablePublic:
		return applyDNS(out, reconciler, dns.PublicDNS, strict, runner, cfg)
	case ResetToDHCP:
		return applyDNS(out, reconciler, dns.ClearToDHCP, false, runner, cfg)
	default:
		return fmt.Errorf("unknown dns mode %d", req.Mode)
	}
}

func applyDNS(out io.Writer, r *dns.Reconciler, d dns.Desired, strict bool, runner ncutils.Runner, cfg *config.Config) error {
	err := r.Apply(d, func(o dns.Outcome) {
		fmt.Fprintln(out, describeOutcome(o, strict))
	})
	if err != nil {
		return err
	}
	if cfg.FlushCache {
		if err := cache.NewManager(runner, cfg.UseSudo(ncutils.IsRoot())).Flush(); err != nil {
			slog.Warn("failed to flush local dns cache", "error", err.Error())
		}
	}
	return nil
}

func describeOutcome(o dns.Outcome, strict bool) string {
	iface := o.State.Interface
	switch o.Desired {
	case dns.PublicDNS:
		msg := fmt.Sprintf("Enable public DNS servers %v on device '%s'", dns.PublicServers(), iface)
		if o.OK {
			return msg + okColor(" OK")
		}
		quantifier := "any of"
		if strict {
			quantifier = "all"
		}
		return msg + warnColor(fmt.Sprintf(" Not OK: (Expected %s %v, but got %v)", quantifier, dns.PublicServers(), shown(o.State)))
	default:
		msg := fmt.Sprintf("Revert to DHCP-assigned DNS servers on device '%s'", iface)
		if o.OK {
			return msg + okColor(" OK")
		}
		return msg + warnColor(fmt.Sprintf(" Not OK (DNS servers still defined: %v)", shown(o.State)))
	}
}

func listDNS(out io.Writer, r *dns.Reconciler, asJSON bool) error {
	if asJSON {
		states := []dns.State{}
		if err := r.List(func(s dns.State) { states = append(states, s) }); err != nil {
			return err
		}
		return PrettyPrint(out, states)
	}
	return r.List(func(s dns.State) {
		line := fmt.Sprintf("%30s : %v", s.Interface, shown(s))
		if s.Source == dns.SourceSystemFallback {
			line += " (dhcp)"
		}
		fmt.Fprintln(out, line)
	})
}

func shown(s dns.State) []string {
	if s.Unset {
		return []string{"none"}
	}
	return s.Servers
}
