package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(cfg Config) (*slog.Logger, *bytes.Buffer) {
	cfg.process()
	var out bytes.Buffer
	base := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(newFilteringHandler(base, &cfg)), &out
}

func TestFilteringHandler(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		tag    string
		logged bool
	}{
		{name: "no filters", cfg: Config{}, logged: true},
		{name: "no filters tagged", cfg: Config{}, tag: "field", logged: true},
		{name: "disabled tag", cfg: Config{DisabledTags: []string{"Field"}}, tag: "field", logged: false},
		{name: "enabled tag", cfg: Config{EnabledTags: []string{"field"}}, tag: "field", logged: true},
		{name: "enabled tags drop untagged", cfg: Config{EnabledTags: []string{"field"}}, logged: false},
		{name: "other enabled tag", cfg: Config{EnabledTags: []string{"buffer"}}, tag: "field", logged: false},
		{name: "disabled package", cfg: Config{DisabledPackages: []string{"logger"}}, logged: false},
		{name: "enabled package", cfg: Config{EnabledPackages: []string{"logger"}}, logged: true},
		{name: "other enabled package", cfg: Config{EnabledPackages: []string{"app"}}, logged: false},
		{name: "disabled file", cfg: Config{DisabledFiles: []string{"handler_test.go"}}, logged: false},
		{name: "disabled beats enabled", cfg: Config{EnabledTags: []string{"x"}, DisabledTags: []string{"x"}}, tag: "x", logged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, out := newTestLogger(tt.cfg)
			if tt.tag != "" {
				log.Info("hello", tagKey, tt.tag)
			} else {
				log.Info("hello")
			}
			assert.Equal(t, tt.logged, bytes.Contains(out.Bytes(), []byte("msg=hello")), out.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestSetup_BadLogPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := Setup(Config{LogFilePath: filepath.Join(blocker, "sub", "segfield.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
}
