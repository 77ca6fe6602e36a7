//go:build !windows

package ncutils

import "golang.org/x/sys/unix"

// IsRoot - checks if the process runs with an effective uid of 0
func IsRoot() bool {
	return unix.Geteuid() == 0
}
