package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_Text(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out}

	require.NoError(t, f.Success("QRVUE YAHGN"))
	require.NoError(t, f.Error("E203", "rotor repeated", map[string]string{"field": "rotor_order"}))

	assert.Equal(t, "QRVUE YAHGN\nError [E203]: rotor repeated\n", out.String())
}

func TestOutputFormatter_TextVerboseDetails(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, Verbose: true}

	require.NoError(t, f.Error("E202", "out of range", "27"))
	assert.Contains(t, out.String(), "Details: 27")
}

func TestOutputFormatter_JSON(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out}

	require.NoError(t, f.Error("E101", "no letters to encipher", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E101", resp.Error.Code)
	assert.Nil(t, resp.Data)
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut}

	f.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	f.Verbose = true
	f.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", errOut.String())
	assert.Empty(t, out.String(), "diagnostics stay off stdout")

	f.ErrWriter = nil
	assert.Equal(t, &out, f.GetErrWriter())
}
