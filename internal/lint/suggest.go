package lint

import (
	"fmt"
	"strings"
	"unicode"

	"histlint/internal/model"
	"histlint/internal/shell"
)

// Thresholds shared by the per-command lints: a command must repeat and
// make up at least 1 in 20 history entries before it is worth a tip,
// and a rewrite must save at least 20% of the typing.
const (
	minOccurrences = 2
	maxRarity      = 20
	shortEnough    = 0.80
)

// tooRare reports whether a command's share of the history is below
// the 1-in-20 threshold.
func tooRare(count, total int) bool {
	return float64(total)/float64(count) > maxRarity
}

// AliasSuggestion proposes an alias for a frequent command with
// arguments. The containment check against the raw alias dump is
// deliberately a plain substring test, collisions and all.
func AliasSuggestion(cmd string, count, total int, aliasDump string) (model.Suggestion, bool) {
	if strings.Contains(aliasDump, cmd) || count < minOccurrences ||
		tooRare(count, total) || !strings.Contains(cmd, " ") {
		return model.Suggestion{}, false
	}
	var name strings.Builder
	for _, word := range strings.Fields(cmd) {
		r := []rune(word)[0]
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			name.WriteRune(r)
		}
	}
	return model.Suggestion{
		Tip: fmt.Sprintf("Consider using an alias: alias %s=%q", name.String(), cmd),
	}, true
}

// IgnoreSuggestion proposes keeping very short, frequent commands out of
// the history via the family's ignore-list variable.
func IgnoreSuggestion(cmd string, count, total int, sh shell.Shell) (model.Suggestion, bool) {
	if len(cmd) >= 4 || count < minOccurrences || tooRare(count, total) {
		return model.Suggestion{}, false
	}
	if sh.IgnoreVar() == "" {
		return model.Suggestion{}, false
	}
	return model.Suggestion{
		Tip: fmt.Sprintf("Consider adding short commands to %s", sh.IgnoreVar()),
	}, true
}

// CDHomeSuggestion fires on the home-directory navigation idioms that
// are spelled longer than a bare "cd". "cd ~/projects" must not fire.
func CDHomeSuggestion(cmd string) (model.Suggestion, bool) {
	switch Normalize(cmd) {
	case "cd ~", "cd ~/", "cd $HOME":
		return model.Suggestion{
			Command: cmd,
			Tip:     `Useless argument. Just use "cd"`,
			Caret:   3,
		}, true
	}
	return model.Suggestion{}, false
}

// RenameSuggestion rewrites three-token mv/cp commands whose arguments
// share a common prefix into brace-expansion form, e.g.
// "mv foo.tar.gz foo.tar.gz.bak" -> "mv foo.tar.gz{,.bak}". The rewrite
// is only suggested when it is at most 80% of the original's length.
func RenameSuggestion(cmd string) (model.Suggestion, bool) {
	tokens := strings.Fields(cmd)
	if len(tokens) != 3 || (tokens[0] != "mv" && tokens[0] != "cp") {
		return model.Suggestion{}, false
	}
	verb, arg1, arg2 := tokens[0], tokens[1], tokens[2]
	a, b, size := longestCommonSubstring(arg1, arg2)
	if size == 0 || a != 0 || b != 0 {
		return model.Suggestion{}, false
	}
	rewritten := fmt.Sprintf("%s %s{%s,%s}", verb, arg1[:size], arg1[size:], arg2[size:])
	if float64(len(rewritten))/float64(len(cmd)) > shortEnough {
		return model.Suggestion{}, false
	}
	return model.Suggestion{
		Command: strings.Join(tokens, " "),
		Tip:     fmt.Sprintf("It can be shorter to write %q.", rewritten),
		Caret:   len(verb) + 1,
	}, true
}

// longestCommonSubstring finds the longest contiguous substring shared
// by a and b, returning its start offsets and length. Ties resolve to
// the earliest offset in a, then in b.
func longestCommonSubstring(a, b string) (ai, bi, size int) {
	// lengths[j] is the match length ending at a[i-1], b[j-1]
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0 // lengths[j-1] from the previous row
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

// inIgnoreList reports whether the normalized command exactly matches
// one of the ":"-separated patterns in the family's ignore variable.
func inIgnoreList(cmd string, env model.Env, sh shell.Shell) bool {
	ignoreVar := sh.IgnoreVar()
	if ignoreVar == "" {
		return false
	}
	norm := Normalize(cmd)
	for _, pattern := range strings.Split(env.Get(ignoreVar), ":") {
		if norm == pattern {
			return true
		}
	}
	return false
}
