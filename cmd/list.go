/*
Copyright © 2022 Netmaker Team <info@netmaker.io>
*/
package cmd

import (
	"github.com/gravitl/dnsswitch/functions"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "display the DNS servers in use",
	Long: `display the DNS servers in use by every active network service
shorthand for dnsswitch dns --list. For example:
dnsswitch list          //display DNS servers per network service
dnsswitch list --json   //display DNS servers as JSON
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		cmd.SilenceUsage = true
		return runDNS(functions.DNSRequest{Mode: functions.ListCurrent, JSON: asJSON})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "print the list as JSON")
}
