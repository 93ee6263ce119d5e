package generate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"commitsync.dev/commitsync/internal/generate"
)

func TestRegistry(t *testing.T) {
	gens := generate.Registry()
	require.Len(t, gens, 2)
	require.Equal(t, "commitlint", gens[0].Name())
	require.Equal(t, "cliff", gens[1].Name())
}

func TestByName(t *testing.T) {
	gen, ok := generate.ByName("cliff")
	require.True(t, ok)
	require.Equal(t, "cliff.toml", gen.TargetFile())

	_, ok = generate.ByName("changelog")
	require.False(t, ok)
}

func TestWriteFile(t *testing.T) {
	cfg := loadConfig(t, `{"types": {"feat": {"changelog_group": "Features"}}}`)
	root := t.TempDir()

	gen := generate.CliffGenerator{}
	path, err := generate.WriteFile(gen, cfg, root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "cliff.toml"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	rendered, err := gen.Render(cfg)
	require.NoError(t, err)
	require.Equal(t, rendered, string(written))

	// Overwrites existing content
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	_, err = generate.WriteFile(gen, cfg, root)
	require.NoError(t, err)

	written, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, rendered, string(written))
}
