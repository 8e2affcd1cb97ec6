package lint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"histlint/internal/model"
	"histlint/internal/shell"
)

// historySizeFloor is the smallest history size that doesn't warrant a
// "retain more history" nag.
const historySizeFloor = 5000

// EnvVar prints one environment variable with a sentinel for unset.
func (r *Reporter) EnvVar(env model.Env, name string) {
	value := env.Get(name)
	if !env.Has(name) {
		value = "<unset>"
	}
	fmt.Fprintf(r.w, "%-*s=> %s\n", envIndent, name, value)
}

// Environment reports the shell-related variables and runs the hygiene
// checks for the detected family. Subprocess-backed checks degrade to a
// skip when the shell can't be queried.
func (r *Reporter) Environment(ctx context.Context, env model.Env, sh shell.Shell, histPath string, q shell.Querier) {
	r.Header("Environment", false)
	r.EnvVar(env, "SHELL")
	r.EnvVar(env, "HISTFILE")
	r.lintHistFilePerms(histPath)
	r.EnvVar(env, "HISTSIZE")
	r.lintHistSize(env)

	switch sh.Family() {
	case shell.FamilyPosix:
		r.EnvVar(env, "HISTFILESIZE")
		r.lintBashHistFileSize(env)
		r.EnvVar(env, "HISTIGNORE")
		r.EnvVar(env, "HISTCONTROL")
		r.lintBashHistControl(env)
		r.lintBashHistAppend(ctx, q)
	case shell.FamilyZsh:
		r.EnvVar(env, "SAVEHIST")
		r.lintZshSaveHist(env)
		r.EnvVar(env, "HISTORY_IGNORE")
		r.lintZshDupes(ctx, q)
		r.lintZshHistAppend(ctx, q)
	}
}

// lintHistFilePerms warns when the history file is readable by other
// users (the world-readable permission bit).
func (r *Reporter) lintHistFilePerms(histPath string) {
	info, err := os.Stat(histPath)
	if err != nil {
		return
	}
	if info.Mode().Perm()&0o004 != 0 {
		r.Tip(fmt.Sprintf("Other users can read %s!", histPath), envIndent+3)
	}
}

func (r *Reporter) lintHistSize(env model.Env) {
	if env.Int("HISTSIZE") < historySizeFloor {
		r.Tip("Increase/set HISTSIZE to retain history", envIndent+3)
	}
}

func (r *Reporter) lintBashHistFileSize(env model.Env) {
	fileSize := env.Int("HISTFILESIZE")
	if fileSize < historySizeFloor {
		r.Tip("Increase/set HISTFILESIZE to retain more history", envIndent+3)
	}
	if fileSize < env.Int("HISTSIZE") {
		r.Tip("HISTFILESIZE should be larger than HISTSIZE", envIndent+3)
	}
}

func (r *Reporter) lintBashHistControl(env model.Env) {
	histControl := env.Get("HISTCONTROL")
	if strings.Contains(histControl, "ignoredups") || strings.Contains(histControl, "erasedups") {
		r.Tip(`Unset "ignoredups" and "erasedups" to retain more history`, envIndent+3)
	}
}

// lintBashHistAppend queries "shopt histappend" in an interactive bash
// and nags unless the option is reported on.
func (r *Reporter) lintBashHistAppend(ctx context.Context, q shell.Querier) {
	out, err := q.QueryOption(ctx, "shopt histappend")
	if err != nil {
		slog.Debug("skipping histappend check", "error", err)
		return
	}
	fields := strings.Fields(out)
	if len(fields) < 2 || fields[1] != "on" {
		r.Tip(`Run "shopt -s histappend" .bashrc to retain more history`, 0)
	}
}

func (r *Reporter) lintZshSaveHist(env model.Env) {
	saveHist := env.Int("SAVEHIST")
	if saveHist < historySizeFloor {
		r.Tip("Increase/set SAVEHIST to retain more history", envIndent+3)
	}
	if saveHist < env.Int("HISTSIZE") {
		r.Tip("SAVEHIST should be larger than HISTSIZE", envIndent+3)
	}
}

func (r *Reporter) lintZshDupes(ctx context.Context, q shell.Querier) {
	setopt, err := q.QueryOption(ctx, "setopt")
	if err != nil {
		slog.Debug("skipping dupes check", "error", err)
		return
	}
	if !strings.Contains(setopt, "histignorealldups") {
		r.Tip(`Run "unsetopt histignorerealdups" to retain more history`, 0)
	}
}

func (r *Reporter) lintZshHistAppend(ctx context.Context, q shell.Querier) {
	setopt, err := q.QueryOption(ctx, "setopt")
	if err != nil {
		slog.Debug("skipping histappend check", "error", err)
		return
	}
	if strings.Contains(setopt, "noappendhistory") {
		r.Tip(`Run "setopt appendhistory" to retain more history`, 0)
	}
}
