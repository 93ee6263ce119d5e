package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"commitsync.dev/commitsync/internal/commitconfig"
	"commitsync.dev/commitsync/internal/git"
	"commitsync.dev/commitsync/internal/output"
)

// defaultCommitTypes is the starter source of truth written by init. The
// grouped types match the conventional-commit presets most changelogs use;
// the rest are linted but kept out of the changelog.
const defaultCommitTypes = `{
  "types": {
    "feat": { "description": "A new feature", "changelog_group": "Features" },
    "fix": { "description": "A bug fix", "changelog_group": "Bug Fixes" },
    "docs": { "description": "Documentation only changes", "changelog_group": "Documentation" },
    "perf": { "description": "A performance improvement", "changelog_group": "Performance" },
    "refactor": { "description": "A change that neither fixes a bug nor adds a feature" },
    "test": { "description": "Adding or correcting tests" },
    "build": { "description": "Changes to the build system or dependencies" },
    "ci": { "description": "Changes to CI configuration" },
    "chore": { "description": "Other changes that don't modify src or test files" }
  }
}
`

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter commit-types.json at the repo root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot()
			if err != nil {
				return err
			}

			path := filepath.Join(repoRoot, commitconfig.SourceFile)
			if _, err := os.Stat(path); err == nil && !force {
				overwrite := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("%s already exists. Overwrite?", commitconfig.SourceFile),
					Default: false,
				}
				if err := survey.AskOne(prompt, &overwrite); err != nil {
					return fmt.Errorf("canceled")
				}
				if !overwrite {
					return fmt.Errorf("%s already exists, use --force to overwrite", commitconfig.SourceFile)
				}
			}

			if err := os.WriteFile(path, []byte(defaultCommitTypes), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", commitconfig.SourceFile, err)
			}

			splog := output.NewSplog()
			splog.Info("Wrote %s", path)
			splog.Tip("Run: commitsync generate")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing commit-types.json without asking")

	return cmd
}
