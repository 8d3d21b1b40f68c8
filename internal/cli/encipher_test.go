package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enigma/internal/operator"
)

func TestEncipher_Args(t *testing.T) {
	out, _, err := execute(t, "", withKey("encipher", "Hello,", "World!")...)
	require.NoError(t, err)
	assert.Equal(t, "QRVUE YAHGN\n", out)
}

func TestDecipher_Roundtrip(t *testing.T) {
	out, _, err := execute(t, "", withKey("decipher", "QRVUE YAHGN")...)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\n", out)
}

func TestEncipher_Stdin(t *testing.T) {
	out, _, err := execute(t, "Café über ß\n", withKey("encipher", "--group", "0")...)
	require.NoError(t, err)
	assert.Equal(t, "XCTRXHNHYU\n", out)
}

func TestEncipher_Defaults(t *testing.T) {
	// I,II,III at rings 01, window EAB, no cables.
	out, _, err := execute(t, "", "encipher", "HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, "QRVUE BZHGN\n", out)
}

func TestEncipher_EnvironmentDefaults(t *testing.T) {
	isolateEnv(t)
	cmd := NewRootCommand()
	t.Setenv("ENIGMA_PLUGBOARD_PAIRS", "AZ,BY,CX")
	t.Setenv("ENIGMA_GROUP_SIZE", "2")

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"encipher", "HELLOWORLD"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "QR VU EY AH GN\n", out.String())
}

func TestEncipher_JSON(t *testing.T) {
	out, _, err := execute(t, "", withKey("--format", "json", "encipher", "HELLOWORLD")...)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   EncipherResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "HELLOWORLD", resp.Data.Input)
	assert.Equal(t, "QRVUEYAHGN", resp.Data.Output)
	assert.Equal(t, "QRVUE YAHGN", resp.Data.Grouped)
	assert.Len(t, resp.Data.KeySheetHash, 64)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Zero(t, resp.Data.Seq, "no journal, no seq")
}

func TestEncipher_InvalidKey(t *testing.T) {
	out, _, err := execute(t, "", "encipher", "--rotor-order", "I,I,III", "HELLO")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E203]")
}

func TestEncipher_EmptyMessage(t *testing.T) {
	out, _, err := execute(t, "", withKey("encipher", "1234 !?")...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E101]")
}

func TestEncipher_KeyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "june.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: June
days:
  - day: 7
    rotor_order: II,IV,V
    ring_settings: 02,21,12
    plugboard_pairs: AV,BS,CG,DL,FU,HZ,IN,KM,OW,RX
    rotor_positions: BLA
`), 0o644))

	out, _, err := execute(t, "", "encipher", "--keys", path, "--day", "7", "--group", "0", "ANGRIFF")
	require.NoError(t, err)
	assert.Equal(t, "EXJMGRX\n", out)

	_, _, err = execute(t, "", "encipher", "--keys", path, "--day", "8", "ANGRIFF")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "", "encipher", "--keys", path, "ANGRIFF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--day is required")

	_, _, err = execute(t, "", "encipher", "--keys", path, "--day", "7", "-g", "AAA", "ANGRIFF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined with --keys")
}

func TestEncipher_DebugLogsKeyPresses(t *testing.T) {
	_, errOut, err := execute(t, "", withKey("--debug", "encipher", "AB")...)
	require.NoError(t, err)
	assert.Contains(t, errOut, "key press")
	assert.Contains(t, errOut, "positions=EAC")
}

func TestEncipher_BadJournalPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "journal.db")
	_, _, err := execute(t, "", withKey("encipher", "--journal", path, "HELLO")...)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReadMessage(t *testing.T) {
	text, err := readMessage([]string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a b", text)
}

func TestTransmitError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{"empty message", operator.ErrEmptyMessage, ErrCodeInput, ExitFailure},
		{"journal write", fmt.Errorf("%w: message m1: %w", operator.ErrJournal, errors.New("disk full")), ErrCodeJournal, ExitCommandError},
		{"machine construction", errors.New("machine: right rotor: unknown rotor \"IX\""), ErrCodeGeneric, ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := &OutputFormatter{Format: "json", Writer: &buf}

			err := transmitError(formatter, tt.err)
			assert.Equal(t, tt.exit, GetExitCode(err))
			assert.ErrorIs(t, err, tt.err)

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
