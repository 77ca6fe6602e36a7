package cache

import (
	"fmt"

	"github.com/gravitl/dnsswitch/ncutils"
)

type darwinManager struct {
	runner ncutils.Runner
	sudo   bool
}

// NewDarwinManager - flushes through dscacheutil and mDNSResponder
func NewDarwinManager(runner ncutils.Runner, sudo bool) Manager {
	return &darwinManager{runner: runner, sudo: sudo}
}

func (d *darwinManager) run(name string, args ...string) error {
	if d.sudo {
		args = append([]string{name}, args...)
		name = "sudo"
	}
	_, err := d.runner.Run(name, args...)
	return err
}

func (d *darwinManager) Flush() error {
	if err := d.run("dscacheutil", "-flushcache"); err != nil {
		return fmt.Errorf("flush dscacheutil: %w", err)
	}
	if err := d.run("killall", "-HUP", "mDNSResponder"); err != nil {
		return fmt.Errorf("signal mDNSResponder: %w", err)
	}
	return nil
}
