package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ResetFlag(t *testing.T) {
	cmd := newRootCmd()

	flag := cmd.Flags().Lookup("reset")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)

	require.NoError(t, cmd.Flags().Parse([]string{"--reset"}))
	got, err := cmd.Flags().GetBool("reset")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
