package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"commitsync.dev/commitsync/testhelpers"
)

func TestGenerateCommand(t *testing.T) {
	binaryPath := getCommitsyncBinary(t)

	t.Run("writes both configs", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		cmd := exec.Command(binaryPath, "generate")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generate failed: %s", string(output))
		require.Contains(t, string(output), "Wrote")

		require.FileExists(t, filepath.Join(scene.Dir, ".commitlintrc.json"))
		require.FileExists(t, filepath.Join(scene.Dir, "cliff.toml"))

		cliff := scene.ReadFile(t, "cliff.toml")
		require.Contains(t, cliff, `{ message = "^feat", group = "Features" },`)
		require.Contains(t, cliff, `{ message = ".*", group = "_ignored" },`)
	})

	t.Run("dry run prints without writing", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		cmd := exec.Command(binaryPath, "generate", "--dry-run")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generate --dry-run failed: %s", string(output))

		// Both rendered configs land on stdout
		require.Contains(t, string(output), "@commitlint/config-conventional")
		require.Contains(t, string(output), "[changelog]")

		// Nothing touches the filesystem
		require.NoFileExists(t, filepath.Join(scene.Dir, ".commitlintrc.json"))
		require.NoFileExists(t, filepath.Join(scene.Dir, "cliff.toml"))
	})

	t.Run("only restricts to a single generator", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		cmd := exec.Command(binaryPath, "generate", "--only", "cliff")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generate --only cliff failed: %s", string(output))

		require.FileExists(t, filepath.Join(scene.Dir, "cliff.toml"))
		require.NoFileExists(t, filepath.Join(scene.Dir, ".commitlintrc.json"))
	})

	t.Run("rejects unknown generator", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		cmd := exec.Command(binaryPath, "generate", "--only", "changelog")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.Error(t, err)
		require.Contains(t, string(output), "unknown generator: changelog")
	})

	t.Run("malformed source fails", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, `{"types": {`)

		cmd := exec.Command(binaryPath, "generate")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.Error(t, err)
		require.Contains(t, string(output), "failed to parse commit-types.json")
	})

	t.Run("fails outside a git repository", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "commit-types.json"),
			[]byte(testhelpers.DefaultSource), 0o644))

		cmd := exec.Command(binaryPath, "generate")
		cmd.Dir = dir
		output, err := cmd.CombinedOutput()
		require.Error(t, err)
		require.Contains(t, string(output), "not a git repository")
	})
}
