package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/testutil"
)

func mustParse(t *testing.T, s *Scenario) *keysheet.KeySheet {
	t.Helper()
	return testutil.MustKeySheet(t, s.Key)
}

func TestRunWithGolden(t *testing.T) {
	for _, path := range []string{
		"testdata/scenarios/double_step.yaml",
		"testdata/scenarios/default_key.yaml",
		"testdata/scenarios/ring_settings.yaml",
	} {
		s, err := LoadScenario(path)
		require.NoError(t, err)

		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}

func TestSnapshot_NormalizesKey(t *testing.T) {
	s := sampleScenario()
	s.Key.RotorOrder = " i , ii , iii "
	s.Key.RotorPositions = "aaa"

	result, err := Run(s)
	require.NoError(t, err)

	snapshot, err := NewSnapshot(s, result)
	require.NoError(t, err)
	assert.Equal(t, "I,II,III", snapshot.Key.RotorOrder)
	assert.Equal(t, "AAA", snapshot.Key.RotorPositions)

	data, err := snapshot.Marshal()
	require.NoError(t, err)
	assert.Equal(t,
		`{"key":{"plugboard_pairs":"","ring_settings":"01,01,01","rotor_order":"I,II,III","rotor_positions":"AAA"},`+
			`"output":"BDZGO","positions":"AAF","scenario_name":"sample","trace":[`+
			`{"in":"A","out":"B","positions":"AAB","seq":1},`+
			`{"in":"A","out":"D","positions":"AAC","seq":2},`+
			`{"in":"A","out":"Z","positions":"AAD","seq":3},`+
			`{"in":"A","out":"G","positions":"AAE","seq":4},`+
			`{"in":"A","out":"O","positions":"AAF","seq":5}]}`,
		string(data))
}

func TestAssertGolden_ExistingResult(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/double_step.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	require.NoError(t, AssertGolden(t, s, result))
}
