package cmd

import (
	"log/slog"

	"github.com/gravitl/dnsswitch/config"
	"github.com/gravitl/dnsswitch/ncutils"
)

// checkPrivilege - warns when DNS changes will run without elevated privileges
func checkPrivilege() {
	if ncutils.IsRoot() {
		return
	}
	if !config.Current.UseSudo(false) {
		slog.Warn("not running as root and sudo is disabled, changing DNS servers will likely be denied")
		return
	}
	slog.Info("DNS changes run through sudo, a password may be requested")
}
