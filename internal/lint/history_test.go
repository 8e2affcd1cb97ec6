package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histlint/internal/model"
	"histlint/internal/shell"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestResolveHistoryFilePrecedence(t *testing.T) {
	home := t.TempDir()
	bash := shell.Detect("/bin/bash")

	explicit := filepath.Join(home, "explicit_history")
	writeFile(t, explicit, "ls\n")
	writeFile(t, filepath.Join(home, ".custom_history"), "ls\n")
	writeFile(t, filepath.Join(home, ".bash_history"), "ls\n")

	t.Run("ExplicitArgument", func(t *testing.T) {
		path, err := ResolveHistoryFile(explicit, model.Env{}, bash, home)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
	})

	t.Run("HistFileRelativeToHome", func(t *testing.T) {
		env := model.Env{"HISTFILE": ".custom_history"}
		path, err := ResolveHistoryFile("", env, bash, home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".custom_history"), path)
	})

	t.Run("HistFileAbsolute", func(t *testing.T) {
		env := model.Env{"HISTFILE": explicit}
		path, err := ResolveHistoryFile("", env, bash, home)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
	})

	t.Run("BashDefault", func(t *testing.T) {
		path, err := ResolveHistoryFile("", model.Env{}, bash, home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".bash_history"), path)
	})

	t.Run("GenericFallback", func(t *testing.T) {
		other := shell.Detect("/bin/tcsh")
		writeFile(t, filepath.Join(home, ".history"), "ls\n")
		path, err := ResolveHistoryFile("", model.Env{}, other, home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".history"), path)
	})

	t.Run("MissingFileIsAnError", func(t *testing.T) {
		missing := filepath.Join(home, "no_such_history")
		path, err := ResolveHistoryFile(missing, model.Env{}, bash, home)
		assert.Error(t, err)
		assert.Equal(t, missing, path) // path still reported for the warning
	})
}

func TestLoadHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	writeFile(t, path, `ls -la
# a comment

  git status
: 1700000000:0;git push origin main
ls -la
`)

	commands, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ls -la",
		"git status",
		"git push origin main",
		"ls -la", // duplicates preserved, order preserved
	}, commands)
}

func TestLoadHistoryMissing(t *testing.T) {
	_, err := LoadHistory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, cmd := range []string{"cd   ~", "  git   status  ", "ls", ""} {
		once := Normalize(cmd)
		assert.Equal(t, once, Normalize(once))
	}
	assert.Equal(t, "git status", Normalize("  git   status  "))
}
