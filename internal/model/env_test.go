package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	env := Snapshot([]string{"SHELL=/bin/bash", "EMPTY=", "WEIRD=a=b", "garbage"})

	assert.Equal(t, "/bin/bash", env.Get("SHELL"))
	assert.Equal(t, "a=b", env.Get("WEIRD")) // value keeps later equals signs
	assert.True(t, env.Has("EMPTY"))
	assert.False(t, env.Has("garbage"))
	assert.False(t, env.Has("UNSET"))
	assert.Equal(t, "", env.Get("UNSET"))
}

func TestEnvInt(t *testing.T) {
	env := Env{"HISTSIZE": "5000", "PADDED": " 42 ", "BAD": "lots"}

	assert.Equal(t, 5000, env.Int("HISTSIZE"))
	assert.Equal(t, 42, env.Int("PADDED"))
	// Malformed and unset values count as zero, never an error.
	assert.Equal(t, 0, env.Int("BAD"))
	assert.Equal(t, 0, env.Int("UNSET"))
}
