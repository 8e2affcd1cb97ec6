package lint

import (
	"math"
	"strings"

	"histlint/internal/model"
	"histlint/internal/shell"
)

// Options sizes the report sections.
type Options struct {
	Favorites     int // favorites list length
	WithArgs      int // top-with-arguments list length
	ShellcheckCap int // shellcheck findings cap per paragraph
}

// DefaultOptions mirrors the report's historical defaults.
func DefaultOptions() Options {
	return Options{Favorites: 5, WithArgs: 10, ShellcheckCap: 10}
}

// Analyze runs the frequency aggregations and the suggestion lints over
// one command sequence. aliasDump is the shell's alias listing; pass ""
// when it could not be queried, which simply treats every command as
// unaliased.
func Analyze(commands []string, env model.Env, sh shell.Shell, aliasDump string, opts Options) model.Analysis {
	a := model.Analysis{
		Commands:    commands,
		Suggestions: make(map[string][]model.Suggestion),
	}
	total := len(commands)

	// Favorites: prefixes of commands that carry arguments.
	prefixes := NewCounter()
	full := NewCounter()
	for _, cmd := range commands {
		if strings.Contains(cmd, " ") {
			prefixes.Add(strings.Fields(cmd)[0])
		}
		full.Add(cmd)
	}
	favorites := prefixes.MostCommon(opts.Favorites)
	a.Favorites = make([]model.CommandStat, len(favorites))
	for i, e := range favorites {
		a.Favorites[i] = model.CommandStat{Command: e.Key, Count: e.Count}
	}

	ranked := full.MostCommon(0)
	a.Ranked = make([]model.CommandStat, len(ranked))
	for i, e := range ranked {
		a.Ranked[i] = model.CommandStat{Command: e.Key, Count: e.Count}
	}
	a.TopWithArgs = a.Ranked
	if opts.WithArgs > 0 && opts.WithArgs < len(a.TopWithArgs) {
		a.TopWithArgs = a.TopWithArgs[:opts.WithArgs]
	}

	// Per-command lints over every unique command; the printed report
	// only surfaces the ones attached to the top-with-arguments list.
	for _, stat := range a.Ranked {
		cmd, count := stat.Command, stat.Count
		if inIgnoreList(cmd, env, sh) {
			continue
		}
		if s, ok := AliasSuggestion(cmd, count, total, aliasDump); ok {
			a.Suggestions[cmd] = append(a.Suggestions[cmd], s)
		}
		if s, ok := IgnoreSuggestion(cmd, count, total, sh); ok {
			a.Suggestions[cmd] = append(a.Suggestions[cmd], s)
		}
	}

	// Global lints: each fires at most once, on the first unique command
	// (in history order) that matches.
	unique := uniqueInOrder(commands)
	for _, lintFn := range []func(string) (model.Suggestion, bool){
		RenameSuggestion,
		CDHomeSuggestion,
	} {
		for _, cmd := range unique {
			if s, ok := lintFn(cmd); ok {
				a.Misc = append(a.Misc, s)
				break
			}
		}
	}

	if total > 0 {
		chars, args := 0, 0
		for _, cmd := range commands {
			chars += len(cmd)
			args += len(strings.Fields(cmd)) - 1
		}
		a.AvgLength = int(math.Round(float64(chars) / float64(total)))
		a.AvgArgs = int(math.Round(float64(args) / float64(total)))
	}
	return a
}

func uniqueInOrder(commands []string) []string {
	seen := make(map[string]struct{}, len(commands))
	var out []string
	for _, cmd := range commands {
		if _, ok := seen[cmd]; ok {
			continue
		}
		seen[cmd] = struct{}{}
		out = append(out, cmd)
	}
	return out
}
