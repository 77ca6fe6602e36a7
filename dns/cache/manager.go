// Package cache flushes the host's DNS resolver cache after settings change.
package cache

import "github.com/gravitl/dnsswitch/ncutils"

// Manager - flushes cached DNS answers
type Manager interface {
	Flush() error
}

// NewManager - returns the flush strategy of the running platform, sudo prefixes
// the privileged commands
func NewManager(runner ncutils.Runner, sudo bool) Manager {
	if ncutils.IsMac() {
		return NewDarwinManager(runner, sudo)
	}
	return newNoopManager()
}
