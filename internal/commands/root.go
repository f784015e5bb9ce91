// Package commands assembles the pennybook CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pennybook",
		Short:   "Flat-file personal finance bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newNetWorthCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
