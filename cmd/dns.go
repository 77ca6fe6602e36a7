/*
Copyright © 2022 Netmaker Team <info@netmaker.io>
*/
package cmd

import (
	"errors"
	"log/slog"

	"github.com/gravitl/dnsswitch/functions"
	"github.com/gravitl/dnsswitch/ncutils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runDNS is swapped out by tests
var runDNS = functions.DNS

// dnsCmd represents the dns command
var dnsCmd = &cobra.Command{
	Use:   "dns",
	Args:  cobra.NoArgs,
	Short: "switch between public DNS servers and those assigned by the DHCP server",
	Long: `switch the DNS servers of every active network service
exactly one of --enable, --reset or --list is required. For example:

dnsswitch dns --enable      //use CloudFlare and Google DNS servers
dnsswitch dns --reset       //revert to the DNS servers assigned by DHCP
dnsswitch dns --list        //display the DNS servers in use
dnsswitch dns -l --json     //display the DNS servers in use as JSON
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := dnsRequest(cmd.Flags())
		if err != nil {
			return err
		}
		// usage is valid from here on, failures come from the host
		cmd.SilenceUsage = true
		if !ncutils.IsMac() {
			slog.Warn("dnsswitch relies on networksetup and scutil which only exist on macOS")
		}
		if req.Mode != functions.ListCurrent {
			checkPrivilege()
		}
		return runDNS(req)
	},
}

func dnsRequest(flags *pflag.FlagSet) (functions.DNSRequest, error) {
	var req functions.DNSRequest
	enable, _ := flags.GetBool("enable")
	reset, _ := flags.GetBool("reset")
	switch {
	case enable:
		req.Mode = functions.EnablePublic
	case reset:
		req.Mode = functions.ResetToDHCP
	default:
		req.Mode = functions.ListCurrent
	}
	req.JSON, _ = flags.GetBool("json")
	req.Strict, _ = flags.GetBool("strict")
	if req.JSON && req.Mode != functions.ListCurrent {
		return req, errors.New("--json can only be used with --list")
	}
	return req, nil
}

// dnsFlagAliases accepts --pub and --dhcp as spellings of --enable and --reset
func dnsFlagAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "pub":
		name = "enable"
	case "dhcp":
		name = "reset"
	}
	return pflag.NormalizedName(name)
}

func init() {
	rootCmd.AddCommand(dnsCmd)
	dnsCmd.Flags().Bool("enable", false, "enable CloudFlare and Google DNS servers (alias --pub)")
	dnsCmd.Flags().Bool("reset", false, "revert to DNS servers assigned by the DHCP server (alias --dhcp)")
	dnsCmd.Flags().BoolP("list", "l", false, "list active DNS servers")
	dnsCmd.Flags().Bool("json", false, "print the list as JSON")
	dnsCmd.Flags().Bool("strict", false, "require every public DNS server to be set")
	dnsCmd.Flags().SetNormalizeFunc(dnsFlagAliases)
	dnsCmd.MarkFlagsOneRequired("enable", "reset", "list")
	dnsCmd.MarkFlagsMutuallyExclusive("enable", "reset", "list")
}
