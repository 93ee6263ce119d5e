// Package cli implements the commitsync command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commitsync",
		Short: "Keep generated commit configs in sync with commit-types.json",
		Long: `Commitsync keeps derived configuration files synchronized with
commit-types.json, the single source of truth describing conventional-commit
types. The commitlint config and the git-cliff changelog config are both
generated from it and never edited by hand.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}
