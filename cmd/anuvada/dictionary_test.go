package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padakosha/anuvada/internal/testutil"
)

func TestNewDictionaryCommand(t *testing.T) {
	cmd := newDictionaryCommand()

	assert.Equal(t, "dictionary", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}

func runDictionaryCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configFile = testutil.SetupTestConfig(t, t.TempDir())
	t.Cleanup(func() {
		configFile = ""
	})

	command := newDictionaryCommand()
	command.SetArgs(args)
	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)

	err := command.Execute()
	return output.String(), err
}

func TestDictionaryCommand_lookup(t *testing.T) {
	got, err := runDictionaryCommand(t, "lookup", "hello")
	require.NoError(t, err)
	assert.Contains(t, got, "ನಮಸ್ಕಾರ")
}

func TestDictionaryCommand_lookupUnknownWord(t *testing.T) {
	_, err := runDictionaryCommand(t, "lookup", "computer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dictionary entry")
}

func TestDictionaryCommand_list(t *testing.T) {
	got, err := runDictionaryCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, got, "hello")
	assert.Contains(t, got, "ನಮಸ್ಕಾರ")
	assert.Contains(t, got, "water")
}
