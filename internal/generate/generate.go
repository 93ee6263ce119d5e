// Package generate renders the configuration files that are derived from
// commit-types.json. Each generator is a pure function from the parsed
// source document to the full text of one target file, so rendering twice
// with no change in between yields byte-identical output.
package generate

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"

	"commitsync.dev/commitsync/internal/commitconfig"
)

// Generator renders one derived configuration file.
type Generator interface {
	// Name identifies the generator for --only selection.
	Name() string

	// TargetFile is the output file name, relative to the repository root.
	TargetFile() string

	// Render produces the full file content from the source document.
	Render(cfg *commitconfig.Config) (string, error)
}

// Registry returns every generator, in the order they are written and checked.
func Registry() []Generator {
	return []Generator{
		CommitlintGenerator{},
		CliffGenerator{},
	}
}

// ByName returns the generator with the given name.
func ByName(name string) (Generator, bool) {
	for _, gen := range Registry() {
		if gen.Name() == name {
			return gen, true
		}
	}
	return nil, false
}

// WriteFile renders gen and atomically replaces its target file under
// repoRoot. The atomic rename means a crash mid-write never leaves a
// truncated config behind. Returns the path written.
func WriteFile(gen Generator, cfg *commitconfig.Config, repoRoot string) (string, error) {
	content, err := gen.Render(cfg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(repoRoot, gen.TargetFile())
	if err := renameio.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", gen.TargetFile(), err)
	}

	return path, nil
}
