package model

// Version of the histlint tool.
const Version = "0.2.0"

// CommandStat is one ranked entry in a frequency report.
type CommandStat struct {
	Command string // full command text, or just the prefix for favorites
	Count   int    // occurrences in the history
}

// Suggestion is a single workflow tip addressing one command.
type Suggestion struct {
	Command string // command the tip addresses; echoed before the tip when non-empty
	Tip     string
	Caret   int // column the ^-- marker points at; 0 renders a plain "- " bullet
}

// Analysis contains everything computed from one pass over the history.
type Analysis struct {
	HistoryFile string
	Commands    []string // the full command sequence, history order

	// Favorites groups commands-with-arguments by their first token.
	Favorites []CommandStat
	// Ranked holds every unique command ordered by count (ties keep
	// first-seen order); TopWithArgs is its head.
	Ranked      []CommandStat
	TopWithArgs []CommandStat

	// Suggestions per unique command, in lint order.
	Suggestions map[string][]Suggestion
	// Misc holds the global lints (cd-home, rename shortening).
	Misc []Suggestion

	AvgLength int // average command length in characters
	AvgArgs   int // average argument count
}

// Total is the number of commands in the sequence.
func (a Analysis) Total() int { return len(a.Commands) }
