package logs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"reclaim/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reclaim.log")
	cfg := &config.Config{}
	cfg.Env.Log = config.Log{Level: "info", File: path}

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)

	logger.Info("ledger ready", slog.String("component", "test"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"ledger ready"`)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestNewRotator_AppliesDefaults(t *testing.T) {
	rotator := newRotator(config.Log{File: "x.log"})

	assert.Equal(t, defaultMaxSizeMB, rotator.MaxSize)
	assert.Equal(t, defaultMaxBackups, rotator.MaxBackups)
	assert.Equal(t, defaultMaxAgeDays, rotator.MaxAge)
}
