package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			var out bytes.Buffer
			got := Prompt(strings.NewReader(tt.in), &out).Confirm("Delete?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Delete? [y/N]")
		})
	}
}

func TestAlwaysNever(t *testing.T) {
	assert.True(t, Always.Confirm("x"))
	assert.False(t, Never.Confirm("x"))
}
