/*
Copyright © 2022 Netmaker Team <info@netmaker.io>
*/
package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/gravitl/dnsswitch/config"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays version information",
	Long: `Displays the current version of dnsswitch

useage:  add flag -l, --long flag for detailed information`,
	Run: func(cmd *cobra.Command, args []string) {
		long, _ := cmd.Flags().GetBool("long")
		if long {
			if info, ok := debug.ReadBuildInfo(); ok {
				pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", info.Settings)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("long", "l", false, "display detailded version information")
}
