/*
Copyright © 2022 Netmaker Team <info@netmaker.io>
*/
package main

import (
	"github.com/gravitl/dnsswitch/cmd"
	"github.com/gravitl/dnsswitch/config"
)

// TODO: use -ldflags to set the right version at build time
var version = "v0.1.0"

func main() {
	config.SetVersion(version)
	cmd.Execute()
}
