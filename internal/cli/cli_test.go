package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roach88/enigma/internal/config"
)

// isolateEnv clears the ENIGMA_* variables so tests see built-in defaults.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvRotorOrder,
		config.EnvRingSettings,
		config.EnvRotorPositions,
		config.EnvPlugboardPairs,
		config.EnvGroupSize,
		config.EnvJournal,
	} {
		t.Setenv(name, "")
	}
}

// execute runs the root command with args and stdin, returning stdout,
// stderr and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	isolateEnv(t)

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// defaultKey is the operator's default setting, spelled out as flags.
var defaultKey = []string{
	"--rotor-order", "I,II,III",
	"--ring-settings", "01,01,01",
	"--rotor-positions", "EAB",
	"--plugboard-pairs", "AZ,BY,CX",
}

// withKey appends the default key flags to args.
func withKey(args ...string) []string {
	return append(args, defaultKey...)
}
