package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"commitsync.dev/commitsync/testhelpers"
)

func runCommitsync(t *testing.T, scene *testhelpers.Scene, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getCommitsyncBinary(t), args...)
	cmd.Dir = scene.Dir
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestCheckCommand(t *testing.T) {
	t.Run("passes after generate", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		output, err := runCommitsync(t, scene, "generate")
		require.NoError(t, err, "generate failed: %s", output)

		output, err = runCommitsync(t, scene, "check")
		require.NoError(t, err, "check failed: %s", output)
		require.Contains(t, output, "All configs are in sync with commit-types.json")
	})

	t.Run("hand edit fails the check", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		output, err := runCommitsync(t, scene, "generate")
		require.NoError(t, err, "generate failed: %s", output)

		content := scene.ReadFile(t, "cliff.toml")
		scene.WriteFile(t, "cliff.toml", content+"# hand edit\n")

		output, err = runCommitsync(t, scene, "check")
		require.Error(t, err)

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 1, exitErr.ExitCode())

		require.Contains(t, output, "Config sync check failed:")
		require.Contains(t, output, "cliff.toml out of sync. Run: commitsync generate")

		// The diff of the drifted content is part of the report
		require.Contains(t, output, "# hand edit")
	})

	t.Run("missing files are enumerated", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		output, err := runCommitsync(t, scene, "check")
		require.Error(t, err)
		require.Contains(t, output, ".commitlintrc.json does not exist. Run: commitsync generate")
		require.Contains(t, output, "cliff.toml does not exist. Run: commitsync generate")
	})

	t.Run("regenerating fixes the check", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")

		output, err := runCommitsync(t, scene, "generate")
		require.NoError(t, err, "generate failed: %s", output)

		// Drift the source of truth
		scene.WriteFile(t, "commit-types.json", `{
  "types": {
    "feat": { "changelog_group": "Features" },
    "perf": { "changelog_group": "Performance" }
  }
}`)

		_, err = runCommitsync(t, scene, "check")
		require.Error(t, err)

		output, err = runCommitsync(t, scene, "generate")
		require.NoError(t, err, "generate failed: %s", output)

		output, err = runCommitsync(t, scene, "check")
		require.NoError(t, err, "check failed: %s", output)
	})

	t.Run("missing source is fatal", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, "")
		require.NoError(t, os.Remove(filepath.Join(scene.Dir, "commit-types.json")))

		output, err := runCommitsync(t, scene, "check")
		require.Error(t, err)
		require.Contains(t, output, "failed to read commit-types.json")
	})
}
