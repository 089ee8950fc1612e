// Package main provides the entry point for the drill CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/cmd/drill/commands"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	verbose bool
	quiet   bool
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "drill",
		Short: "Run casebooks against the algorithm patterns",
		Long: `drill executes YAML casebooks of literal test vectors against the
pattern packages and reports which cases pass.

Commands:
  run       Run one or more casebooks (default: the built-in tutorial)
  ops       List supported operations`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every case (debug level)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors; the report is still printed")

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewOpsCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "drill %s\n", version)
		},
	}
}
