package wiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotorCatalog(t *testing.T) {
	tests := []struct {
		id     RotorID
		wiring string
		notch  rune
	}{
		{RotorI, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q'},
		{RotorII, "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E'},
		{RotorIII, "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V'},
		{RotorIV, "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J'},
		{RotorV, "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z'},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			spec, ok := Rotor(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.id, spec.ID())
			assert.Equal(t, tt.wiring, spec.Wiring())
			assert.Equal(t, tt.notch, spec.Notch())

			for i := 0; i < Size; i++ {
				assert.Equal(t, i, spec.Inverse(spec.Forward(i)))
			}
		})
	}
}

func TestRotorLookupUnknown(t *testing.T) {
	_, ok := Rotor("VI")
	assert.False(t, ok)
}

func TestRotorIDsReturnsCopy(t *testing.T) {
	ids := RotorIDs()
	require.Len(t, ids, 5)
	ids[0] = "X"
	assert.Equal(t, RotorI, RotorIDs()[0])
}

func TestReflectorIsInvolutionWithoutFixedPoints(t *testing.T) {
	ref := Reflector()
	assert.Equal(t, "B", ref.Name())
	assert.Equal(t, "YRUHQSLDPXNGOKMIEBFZCWVJAT", ref.Wiring())

	for i := 0; i < Size; i++ {
		assert.NotEqual(t, i, ref.Reflect(i), "letter %c maps to itself", Letter(i))
		assert.Equal(t, i, ref.Reflect(ref.Reflect(i)))
	}
}

func TestParsePermutationRejects(t *testing.T) {
	tests := map[string]string{
		"short":     "ABC",
		"duplicate": "AACDEFGHIJKLMNOPQRSTUVWXYZ",
		"lowercase": "aBCDEFGHIJKLMNOPQRSTUVWXYZ",
	}
	for name, table := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parsePermutation(table)
			assert.Error(t, err)
		})
	}
}

func TestMustReflectorPanicsOnFixedPoint(t *testing.T) {
	assert.Panics(t, func() { mustReflector("identity", Alphabet) })
}

func TestAlphabetHelpers(t *testing.T) {
	i, ok := Index('C')
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = Index('c')
	assert.False(t, ok)
	assert.False(t, IsLetter('1'))

	assert.Equal(t, 'Z', Letter(-1))
	assert.Equal(t, 'A', Letter(26))
	assert.Equal(t, 25, Mod(-27))
}
