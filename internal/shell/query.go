package shell

import (
	"context"
	"os/exec"
	"time"
)

// DefaultQueryTimeout bounds each interactive shell round-trip so a
// misbehaving startup file can't hang the whole report.
const DefaultQueryTimeout = 10 * time.Second

// Querier is the capability for introspecting the user's shell. The
// report only ever needs the alias dump and the state of one option, so
// tests can fake both without spawning a real shell.
type Querier interface {
	// QueryAliases returns the shell's alias dump.
	QueryAliases(ctx context.Context) (string, error)
	// QueryOption runs one option-inspection command ("shopt histappend",
	// "setopt") and returns its output.
	QueryOption(ctx context.Context, command string) (string, error)
}

// ExecQuerier queries a real shell binary by running it interactively
// with a single command, the same way a user would. Arguments are passed
// as an argv, never interpolated into a shell string.
type ExecQuerier struct {
	ShellPath string
	Timeout   time.Duration
}

// NewQuerier returns an ExecQuerier for the given shell path with the
// default timeout.
func NewQuerier(shellPath string) *ExecQuerier {
	return &ExecQuerier{ShellPath: shellPath, Timeout: DefaultQueryTimeout}
}

func (q *ExecQuerier) QueryAliases(ctx context.Context) (string, error) {
	return q.run(ctx, "alias")
}

func (q *ExecQuerier) QueryOption(ctx context.Context, command string) (string, error) {
	return q.run(ctx, command)
}

func (q *ExecQuerier) run(ctx context.Context, command string) (string, error) {
	if q.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.Timeout)
		defer cancel()
	}
	// -i so the shell sources its rc files; aliases and options only
	// exist in interactive sessions.
	out, err := exec.CommandContext(ctx, q.ShellPath, "-i", "-c", command).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
