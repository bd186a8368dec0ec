// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/docconv/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.LogConfig
		verbose   bool
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "console warn", cfg: types.LogConfig{Level: "warn", Format: "console"}, wantLevel: zapcore.WarnLevel},
		{name: "json info", cfg: types.LogConfig{Level: "info", Format: "json"}, wantLevel: zapcore.InfoLevel},
		{name: "verbose forces debug", cfg: types.LogConfig{Level: "error", Format: "console"}, verbose: true, wantLevel: zapcore.DebugLevel},
		{name: "bad level", cfg: types.LogConfig{Level: "loud", Format: "console"}, wantErr: true},
		{name: "bad format", cfg: types.LogConfig{Level: "info", Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}
