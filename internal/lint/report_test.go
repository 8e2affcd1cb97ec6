package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histlint/internal/model"
	"histlint/internal/shell"
)

func TestMain(m *testing.M) {
	// Plain output so assertions don't fight ANSI escapes.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// fakeQuerier fakes shell introspection without spawning a shell.
type fakeQuerier struct {
	aliases string
	options map[string]string
	err     error
}

func (q fakeQuerier) QueryAliases(context.Context) (string, error) {
	return q.aliases, q.err
}

func (q fakeQuerier) QueryOption(_ context.Context, command string) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	return q.options[command], nil
}

func newTestReporter() (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewReporter(&buf, DefaultOptions()), &buf
}

func TestFavoritesFormatting(t *testing.T) {
	commands := []string{
		"git status", "git status", "git status",
		"ls -la",
		"make", // no arguments: excluded from favorites
		"cd ..",
		"ls -la",
		"vim notes.md",
	}
	a := Analyze(commands, model.Env{}, shell.Detect("/bin/bash"), "", DefaultOptions())
	r, buf := newTestReporter()
	r.Favorites(a)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5) // header + the 4 distinct prefixes

	assert.Contains(t, lines[0], "Favorite 5")
	// 3 of 8 commands start with "git": 37.5%, shown as count/total.
	assert.True(t, strings.HasPrefix(lines[1], "git"))
	assert.Contains(t, lines[1], "37.5%")
	assert.Contains(t, lines[1], "3/8")
	// "make" never appears as a favorite prefix.
	assert.NotContains(t, buf.String(), "make")
}

func TestTopWithArgumentsIncludesSuggestionsAndAverages(t *testing.T) {
	var commands []string
	for i := 0; i < 5; i++ {
		commands = append(commands, "git status")
	}
	commands = append(commands, "ls")

	a := Analyze(commands, model.Env{}, shell.Detect("/bin/bash"), "", DefaultOptions())
	r, buf := newTestReporter()
	r.TopWithArguments(a)

	out := buf.String()
	assert.Contains(t, out, "Top 10 with arguments")
	assert.Contains(t, out, `alias gs="git status"`)
	assert.Contains(t, out, "chars with")
}

func TestEmptyHistoryReportsNoData(t *testing.T) {
	a := Analyze(nil, model.Env{}, shell.Detect("/bin/bash"), "", DefaultOptions())
	r, buf := newTestReporter()
	r.Favorites(a)
	r.TopWithArguments(a)

	assert.Equal(t, 2, strings.Count(buf.String(), "No commands to report."))
}

func TestSuggestionsSkippedForIgnoredCommands(t *testing.T) {
	var commands []string
	for i := 0; i < 5; i++ {
		commands = append(commands, "git status")
	}
	env := model.Env{"HISTIGNORE": "git status"}
	a := Analyze(commands, env, shell.Detect("/bin/bash"), "", DefaultOptions())
	assert.Empty(t, a.Suggestions["git status"])
}

func TestMiscellaneousSection(t *testing.T) {
	commands := []string{
		"cd ~/projects", // must not fire
		"cd ~",
		"cd $HOME", // second match never prints: one firing per lint
		"mv foo.tar.gz foo.tar.gz.bak",
	}
	a := Analyze(commands, model.Env{}, shell.Detect("/bin/bash"), "", DefaultOptions())
	r, buf := newTestReporter()
	r.Miscellaneous(a)

	out := buf.String()
	assert.Contains(t, out, "Miscellaneous")
	assert.Contains(t, out, `Just use "cd"`)
	assert.Contains(t, out, "mv foo.tar.gz{,.bak}")
	assert.Equal(t, 1, strings.Count(out, `Just use "cd"`))
	assert.NotContains(t, out, "cd ~/projects\n")
}

func TestEnvironmentReportBash(t *testing.T) {
	histPath := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(histPath, []byte("ls\n"), 0o644)) // world-readable

	env := model.Env{
		"SHELL":        "/bin/bash",
		"HISTSIZE":     "500",
		"HISTFILESIZE": "100000",
		"HISTCONTROL":  "ignoredups",
	}
	q := fakeQuerier{options: map[string]string{"shopt histappend": "histappend\toff\n"}}
	r, buf := newTestReporter()
	r.Environment(context.Background(), env, shell.Detect("/bin/bash"), histPath, q)

	out := buf.String()
	assert.Contains(t, out, fmt.Sprintf("%-20s=> %s", "SHELL", "/bin/bash"))
	assert.Contains(t, out, fmt.Sprintf("%-20s=> %s", "HISTFILE", "<unset>"))
	assert.Contains(t, out, "Other users can read "+histPath)
	assert.Contains(t, out, "Increase/set HISTSIZE")
	assert.NotContains(t, out, "Increase/set HISTFILESIZE")
	assert.Contains(t, out, `Unset "ignoredups" and "erasedups"`)
	assert.Contains(t, out, `Run "shopt -s histappend"`)
	// zsh-only variables never show for bash
	assert.NotContains(t, out, "SAVEHIST")
}

func TestEnvironmentReportZsh(t *testing.T) {
	histPath := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(histPath, []byte("ls\n"), 0o600))

	env := model.Env{
		"SHELL":    "/usr/bin/zsh",
		"HISTSIZE": "10000",
		"SAVEHIST": "20000",
	}
	q := fakeQuerier{options: map[string]string{"setopt": "histignorealldups\nsharehistory\n"}}
	r, buf := newTestReporter()
	r.Environment(context.Background(), env, shell.Detect("/usr/bin/zsh"), histPath, q)

	out := buf.String()
	assert.Contains(t, out, fmt.Sprintf("%-20s=> %s", "SAVEHIST", "20000"))
	assert.NotContains(t, out, "Other users can read")
	assert.NotContains(t, out, "Increase/set SAVEHIST")
	assert.NotContains(t, out, `Run "unsetopt histignorerealdups"`)
	assert.NotContains(t, out, "HISTCONTROL")
}

func TestEnvironmentChecksDegradeWhenShellUnavailable(t *testing.T) {
	histPath := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(histPath, []byte("ls\n"), 0o600))

	env := model.Env{"SHELL": "/bin/bash", "HISTSIZE": "10000", "HISTFILESIZE": "10000"}
	q := fakeQuerier{err: errors.New("spawn failed")}
	r, buf := newTestReporter()
	r.Environment(context.Background(), env, shell.Detect("/bin/bash"), histPath, q)

	// The subprocess-backed check is skipped; everything else still runs.
	out := buf.String()
	assert.NotContains(t, out, "shopt -s histappend")
	assert.Contains(t, out, fmt.Sprintf("%-20s=> %s", "HISTCONTROL", "<unset>"))
}

func TestEnvironmentSkipsFamilyChecksForUnknownShell(t *testing.T) {
	histPath := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(histPath, []byte("ls\n"), 0o600))

	env := model.Env{"SHELL": "/usr/bin/fish", "HISTSIZE": "10000"}
	r, buf := newTestReporter()
	r.Environment(context.Background(), env, shell.Detect("/usr/bin/fish"), histPath, fakeQuerier{})

	out := buf.String()
	assert.NotContains(t, out, "HISTFILESIZE")
	assert.NotContains(t, out, "SAVEHIST")
}

func TestWarnAndTipRendering(t *testing.T) {
	r, buf := newTestReporter()
	r.Warn("History file '/nope' not found.")
	assert.Equal(t, "WARNING: History file '/nope' not found.\n", buf.String())

	buf.Reset()
	r.Tip("plain tip", 0)
	assert.Equal(t, "- plain tip\n", buf.String())

	buf.Reset()
	r.Tip("pointed tip", 3)
	assert.Equal(t, "   ^-- pointed tip\n", buf.String())
}
