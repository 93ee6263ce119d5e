// Package syncheck verifies that the generated config files still match
// what the current commit-types.json renders to.
package syncheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"commitsync.dev/commitsync/internal/commitconfig"
	commiterrors "commitsync.dev/commitsync/internal/errors"
	"commitsync.dev/commitsync/internal/generate"
)

// RemediationCommand is what a user runs to bring the configs back in sync.
const RemediationCommand = "commitsync generate"

// Report is the outcome of a sync check. Discrepancies holds one typed
// error per missing or drifted target file; an empty list means everything
// is in sync.
type Report struct {
	Discrepancies []error
}

// InSync reports whether every generated config matched.
func (r *Report) InSync() bool {
	return len(r.Discrepancies) == 0
}

// Check re-renders every registered generator and compares the output,
// trimmed of leading and trailing whitespace, against the file on disk.
// Missing and drifted targets are accumulated so a single run reports every
// out-of-sync file. Failures to load the source document or to render are
// returned as errors and abort the check.
//
// The comparison deliberately trims only surrounding whitespace: a
// whitespace change inside the body is real drift and must be reported.
func Check(repoRoot string) (*Report, error) {
	cfg, err := commitconfig.Load(filepath.Join(repoRoot, commitconfig.SourceFile))
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, gen := range generate.Registry() {
		rendered, err := gen.Render(cfg)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(repoRoot, gen.TargetFile())
		onDisk, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				report.Discrepancies = append(report.Discrepancies,
					commiterrors.NewTargetMissingError(gen.TargetFile(), RemediationCommand))
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", gen.TargetFile(), err)
		}

		want := strings.TrimSpace(rendered)
		got := strings.TrimSpace(string(onDisk))
		if want != got {
			report.Discrepancies = append(report.Discrepancies,
				commiterrors.NewTargetOutOfSyncError(gen.TargetFile(), RemediationCommand, cmp.Diff(want, got)))
		}
	}

	return report, nil
}
