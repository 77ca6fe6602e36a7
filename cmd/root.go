// Package cmd command line for dnsswitch
/*
Copyright © 2022 Netmaker Team <info@netmaker.io>
*/
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gravitl/dnsswitch/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dnsswitch",
	Short: "switch between public and DHCP assigned DNS servers",
	Long: `dnsswitch switches every active network service of a mac between public
DNS servers (CloudFlare and Google) and the DNS servers assigned by DHCP.

Enable, reset and list the DNS servers in use.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "use specified config file")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 0, "set logging verbosity 0-4")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("verbosity", rootCmd.PersistentFlags().Lookup("verbosity"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig tells viper where to look for the config file and ENV variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		for _, path := range config.GetConfigPaths() {
			viper.AddConfigPath(path)
		}
		viper.SetConfigName(config.ConfigName)
	}
	viper.SetConfigType(config.ConfigType)
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	config.SetDefaults(viper.GetViper())
}

// loadConfig reads settings and sets up logging and colors, it never touches
// the network configuration of the host.
func loadConfig() error {
	cfg, err := config.Read(viper.GetViper())
	if err != nil {
		return err
	}
	config.Current = *cfg
	setupLogging(cfg.Verbosity)
	if used := viper.ConfigFileUsed(); used != "" {
		slog.Info("using config file", "file", used)
	}
	color.NoColor = cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
	return nil
}
