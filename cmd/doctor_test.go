package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevr/gensrc/internal/identity"
)

func TestDoctor_AllChecksPass(t *testing.T) {
	h := newHarness(t, jane)

	require.Equal(t, 0, h.run("doctor"), h.stderr.String())
	stdout := h.stdout.String()
	assert.Contains(t, stdout, "✔ git identity    Jane Doe <jane@example.com>")
	assert.Contains(t, stdout, "(not present, using defaults)")
	assert.Contains(t, stdout, "main: c, cpp, go, py, sh")
}

func TestDoctor_MissingIdentity(t *testing.T) {
	h := newHarness(t, identity.Static{})

	assert.Equal(t, 1, h.run("doctor"))
	assert.Contains(t, h.stdout.String(), "✘ git identity    user.name, user.email not set")
	assert.Equal(t, "error: 1 check(s) failed\n", h.stderr.String())
}

func TestDoctor_BadConfig(t *testing.T) {
	h := newHarness(t, jane)

	assert.Equal(t, 1, h.run("doctor", "--config", h.path("absent.yaml")))
	assert.Contains(t, h.stdout.String(), "✘ config")
	assert.Contains(t, h.stdout.String(), "main: c, cpp, go, py, sh")
}
