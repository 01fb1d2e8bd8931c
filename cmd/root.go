// Package cmd is for command line interactions with the superkmers application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "superkmers",
	Short: `Split DNA sequences into superkmers: runs of consecutive k-mers
that share a minimizer`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set persistent flags
func init() {
	// settings is an optional parameter for a settings file (YAML, JSON or TOML)
	rootCmd.PersistentFlags().String("settings", "", "settings file with k, l, scheme, etc")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stderr")
}
