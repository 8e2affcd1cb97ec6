package shell

import (
	"path/filepath"
)

// Family is the closed set of shell families the linter knows rules for.
type Family int

const (
	FamilyOther Family = iota
	FamilyPosix        // bash and plain sh share one rule set
	FamilyZsh
)

// Shell defines the per-family knowledge the report needs.
type Shell interface {
	Name() string            // base name of the shell binary, e.g. "bash"
	Family() Family
	IgnoreVar() string       // history ignore-list variable, "" if none known
	DefaultHistFile() string // fallback history filename in $HOME
}

// BashShell implements Shell for bash and sh.
type BashShell struct {
	name string
}

func (s *BashShell) Name() string            { return s.name }
func (s *BashShell) Family() Family          { return FamilyPosix }
func (s *BashShell) IgnoreVar() string       { return "HISTIGNORE" }
func (s *BashShell) DefaultHistFile() string { return ".bash_history" }

// ZshShell implements Shell for zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string            { return "zsh" }
func (s *ZshShell) Family() Family          { return FamilyZsh }
func (s *ZshShell) IgnoreVar() string       { return "HISTORY_IGNORE" }
func (s *ZshShell) DefaultHistFile() string { return ".history" }

// OtherShell covers unrecognized shells; family-specific checks are
// skipped entirely for it.
type OtherShell struct {
	name string
}

func (s *OtherShell) Name() string            { return s.name }
func (s *OtherShell) Family() Family          { return FamilyOther }
func (s *OtherShell) IgnoreVar() string       { return "" }
func (s *OtherShell) DefaultHistFile() string { return ".history" }

// Detect maps the $SHELL path onto a shell family by base name.
// Anything that isn't bash, sh, or zsh lands in OtherShell.
func Detect(shellPath string) Shell {
	name := filepath.Base(shellPath)
	switch name {
	case "bash", "sh":
		return &BashShell{name: name}
	case "zsh":
		return &ZshShell{}
	default:
		return &OtherShell{name: name}
	}
}
