package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	oldVersion := version
	SetVersion("1.2.3")
	defer SetVersion(oldVersion)

	out, err := execute("version")

	require.NoError(t, err)
	assert.Contains(t, out, "quantio version 1.2.3")
}

func TestVersionCmd_DefaultVersion(t *testing.T) {
	out, err := execute("version")

	require.NoError(t, err)
	assert.Contains(t, out, "quantio version")
}
