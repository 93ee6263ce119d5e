package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"

	"commitsync.dev/commitsync/internal/commitconfig"
)

// DefaultSource is the commit-types.json document a fresh scene starts with.
const DefaultSource = `{
  "types": {
    "feat": { "changelog_group": "Features" },
    "fix": { "changelog_group": "Bug Fixes" },
    "chore": {}
  }
}
`

// Scene is a temporary git repository with a commit-types.json at its root,
// ready to run commitsync commands against.
type Scene struct {
	Dir string
}

// NewScene creates a scene seeded with source as its commit-types.json.
// Pass an empty string for the default document. Cleanup is automatic.
func NewScene(t *testing.T, source string) *Scene {
	t.Helper()

	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("failed to init git repo: %v", err)
	}

	if source == "" {
		source = DefaultSource
	}
	if err := os.WriteFile(filepath.Join(dir, commitconfig.SourceFile), []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", commitconfig.SourceFile, err)
	}

	return &Scene{Dir: dir}
}

// SourcePath returns the path of the scene's commit-types.json.
func (s *Scene) SourcePath() string {
	return filepath.Join(s.Dir, commitconfig.SourceFile)
}

// WriteFile writes a file relative to the scene root.
func (s *Scene) WriteFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(s.Dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// ReadFile reads a file relative to the scene root.
func (s *Scene) ReadFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}
