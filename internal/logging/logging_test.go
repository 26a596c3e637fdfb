package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/tabletop/internal/config"
)

func TestNewLevels(t *testing.T) {
	for _, dev := range []bool{false, true} {
		l, err := New(config.Log{Level: "error", Development: dev})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
		assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "chatty"})
	assert.Error(t, err)
}
