package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	commiterrors "commitsync.dev/commitsync/internal/errors"
	"commitsync.dev/commitsync/internal/git"
	"commitsync.dev/commitsync/internal/output"
	"commitsync.dev/commitsync/internal/syncheck"
)

// newCheckCmd creates the check command
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that generated configs match commit-types.json",
		Long: `Verify that generated configs match commit-types.json.

Every generator is re-rendered and compared against the file on disk. All
discrepancies are reported in one run, and the exit status is non-zero if
any file is missing or out of sync.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot()
			if err != nil {
				return err
			}

			report, err := syncheck.Check(repoRoot)
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			if report.InSync() {
				splog.Info(output.Success("All configs are in sync with commit-types.json"))
				return nil
			}

			splog.Info("Config sync check failed:")
			splog.Newline()
			for _, discrepancy := range report.Discrepancies {
				splog.Error("  - %s", discrepancy)

				var outOfSync *commiterrors.TargetOutOfSyncError
				if errors.As(discrepancy, &outOfSync) && outOfSync.Diff != "" {
					splog.Info("%s", outOfSync.Diff)
				}
				splog.Newline()
			}

			return fmt.Errorf("%d config(s) out of sync", len(report.Discrepancies))
		},
	}

	return cmd
}
