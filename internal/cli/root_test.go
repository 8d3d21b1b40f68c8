package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "enigma", cmd.Use)
	assert.Contains(t, cmd.Long, "reflector B")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"encipher", "validate", "test", "journal", "replay"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestDecipherAlias(t *testing.T) {
	cmd := NewRootCommand()
	subCmd, _, err := cmd.Find([]string{"decipher"})
	require.NoError(t, err)
	assert.Equal(t, "encipher", subCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	debugFlag := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debugFlag)
	assert.Equal(t, "d", debugFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestEncipherCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	encCmd, _, err := cmd.Find([]string{"encipher"})
	require.NoError(t, err)

	positions := encCmd.Flags().Lookup("rotor-positions")
	require.NotNil(t, positions)
	assert.Equal(t, "g", positions.Shorthand)

	for _, name := range []string{"rotor-order", "ring-settings", "plugboard-pairs", "keys", "day", "group", "journal"} {
		assert.NotNil(t, encCmd.Flags().Lookup(name), name)
	}
}

func TestJournalCommandsRequireDB(t *testing.T) {
	for _, name := range []string{"journal", "replay"} {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, "", name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `"db" not set`)
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad path")))

	wrapped := WrapExitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}
