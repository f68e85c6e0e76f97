package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tpsolve/logging"
)

func TestNew_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		" WARN ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for in, want := range cases {
		for _, dev := range []bool{false, true} {
			log, err := logging.New(in, dev)
			require.NoError(t, err, in)
			assert.True(t, log.Core().Enabled(want), in)
			if want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(want-1), in)
			}
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("chatty", false)
	require.ErrorContains(t, err, "logging:")
}
