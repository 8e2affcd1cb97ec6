package model

import (
	"strconv"
	"strings"
)

// Env is a read-only snapshot of the process environment, captured once
// at startup and injected into every component. Components never call
// os.Getenv directly, which keeps the checks testable with a plain map.
type Env map[string]string

// Snapshot builds an Env from os.Environ()-style "KEY=value" pairs.
func Snapshot(environ []string) Env {
	env := make(Env, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// Get returns the value of name, or "" when unset.
func (e Env) Get(name string) string { return e[name] }

// Has reports whether name is set, even if empty.
func (e Env) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// Int returns the value of name as an integer. Unset or malformed
// values count as 0 rather than an error.
func (e Env) Int(name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(e[name]))
	if err != nil {
		return 0
	}
	return n
}
