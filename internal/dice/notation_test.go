package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want Spec
	}{
		{"d20", Spec{Count: 1, Sides: 20}},
		{"D20", Spec{Count: 1, Sides: 20}},
		{"2d6", Spec{Count: 2, Sides: 6}},
		{"2d6+3", Spec{Count: 2, Sides: 6, Modifier: 3}},
		{"3d8-2", Spec{Count: 3, Sides: 8, Modifier: -2}},
		{"d100+0", Spec{Count: 1, Sides: 100}},
		{"10D4-10", Spec{Count: 10, Sides: 4, Modifier: -10}},
		{"0d6+1", Spec{Count: 0, Sides: 6, Modifier: 1}},
		{"1d0", Spec{Count: 1, Sides: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNotation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNotationRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"20",
		"d",
		"2d",
		" d20",
		"d20 ",
		"2 d6",
		"2d6 + 3",
		"2d6+3+1",
		"2d6+1d4",
		"2d6*2",
		"2x6",
		"-2d6",
		"d+3",
		"2d6+",
		"d99999999999999999999",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseNotation(in)
			assert.ErrorIs(t, err, ErrInvalidNotation)
		})
	}
}

func TestSpecString(t *testing.T) {
	assert.Equal(t, "2d6+3", Spec{Count: 2, Sides: 6, Modifier: 3}.String())
	assert.Equal(t, "1d20", Spec{Count: 1, Sides: 20}.String())
	assert.Equal(t, "3d8-2", Spec{Count: 3, Sides: 8, Modifier: -2}.String())
}
