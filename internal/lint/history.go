package lint

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"histlint/internal/model"
	"histlint/internal/shell"
)

// zsh extended history lines look like ": 1700000000:0;git status".
var zshExtendedRe = regexp.MustCompile(`^:\s*\d+:\d+;(.*)$`)

// ResolveHistoryFile determines which history file to lint. Precedence:
// explicit argument, $HISTFILE relative to home, the shell family's
// default filename in home, then the generic ~/.history fallback.
// The returned path is always set, even when the file is missing.
func ResolveHistoryFile(arg string, env model.Env, sh shell.Shell, home string) (string, error) {
	var path string
	switch {
	case arg != "":
		path = arg
	case env.Get("HISTFILE") != "":
		// typical zsh: HISTFILE is usually absolute already
		hf := env.Get("HISTFILE")
		if filepath.IsAbs(hf) {
			path = hf
		} else {
			path = filepath.Join(home, hf)
		}
	default:
		path = filepath.Join(home, sh.DefaultHistFile())
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, fmt.Errorf("history file %q not found", path)
	}
	return path, nil
}

// LoadHistory reads the history file into an ordered command sequence.
// Lines are trimmed; blank lines and comment lines are dropped. A zsh
// extended-history prefix is stripped so only the command text remains.
func LoadHistory(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var commands []string
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if m := zshExtendedRe.FindStringSubmatch(line); m != nil {
			line = strings.TrimSpace(m[1])
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return commands, fmt.Errorf("error reading history: %w", err)
	}
	return commands, nil
}

// Normalize collapses runs of whitespace to single spaces. It is
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(cmd string) string {
	return strings.Join(strings.Fields(cmd), " ")
}
