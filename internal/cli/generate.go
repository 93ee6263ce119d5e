package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"commitsync.dev/commitsync/internal/commitconfig"
	"commitsync.dev/commitsync/internal/generate"
	"commitsync.dev/commitsync/internal/git"
	"commitsync.dev/commitsync/internal/output"
)

// newGenerateCmd creates the generate command
func newGenerateCmd() *cobra.Command {
	var dryRun bool
	var only string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the configs derived from commit-types.json",
		Long: `Regenerate the configs derived from commit-types.json.

Examples:
  commitsync generate
  commitsync generate --dry-run
  commitsync generate --only cliff --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot()
			if err != nil {
				return err
			}

			cfg, err := commitconfig.Load(filepath.Join(repoRoot, commitconfig.SourceFile))
			if err != nil {
				return err
			}

			generators := generate.Registry()
			if only != "" {
				gen, ok := generate.ByName(only)
				if !ok {
					return fmt.Errorf("unknown generator: %s", only)
				}
				generators = []generate.Generator{gen}
			}

			splog := output.NewSplog()
			for _, gen := range generators {
				if dryRun {
					// Dry-run is the comparison interface: rendered text
					// goes to stdout and nothing touches the filesystem.
					content, err := gen.Render(cfg)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), content)
					continue
				}

				path, err := generate.WriteFile(gen, cfg, repoRoot)
				if err != nil {
					return err
				}
				splog.Info("Wrote %s", path)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the rendered configs instead of writing them")
	cmd.Flags().StringVar(&only, "only", "", "limit to a single generator (commitlint or cliff)")

	return cmd
}
