package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zapcore.Level
		expectedError bool
	}{
		{name: "debug", level: "debug", expectedLevel: zapcore.DebugLevel},
		{name: "info", level: "info", expectedLevel: zapcore.InfoLevel},
		{name: "warn", level: "warn", expectedLevel: zapcore.WarnLevel},
		{name: "error", level: "error", expectedLevel: zapcore.ErrorLevel},
		{name: "invalid level", level: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() { Logger = zap.NewNop() }()

			err := Init(tt.level)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, Logger.Core().Enabled(tt.expectedLevel))
			if tt.expectedLevel > zapcore.DebugLevel {
				assert.False(t, Logger.Core().Enabled(tt.expectedLevel-1))
			}
		})
	}
}
