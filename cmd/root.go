// Package cmd is for command line interactions with the polyply application
package cmd

import (
	"log"

	"github.com/chrisjonesBSU/polyply-1.0/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "polyply",
	Short: `Build fine-grained molecules from residue level graphs.
Residues are matched to the blocks of a force field and merged into one molecule`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stderr")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
