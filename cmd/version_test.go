package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentVersion(t *testing.T) {
	v, err := currentVersion("v1.4.2")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", v.String())

	_, err = currentVersion("dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development build")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	out, err := runCommand(t, newFakeAPI(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "trivia 1.2.3 (built 2026-01-01)\n", out)
}
