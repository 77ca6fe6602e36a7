package cmd

import (
	"fmt"

	"github.com/gravitl/dnsswitch/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Args:  cobra.NoArgs,
	Short: "display the effective configuration",
	Long: `display the configuration after merging defaults, the config file,
DNSSWITCH_* environment variables and flags`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Current.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
