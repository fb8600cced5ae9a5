package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"INFO":    "info",
		"":        "info",
		"warning": "warn",
		"error":   "error",
	}
	for in, want := range cases {
		lvl, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, lvl.String())
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("gradviz", Config{Level: "info", Console: true}, &buf)
	require.NoError(t, err)

	log.Debugw("hidden")
	log.Infow("step", "epoch", 3)
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "gradviz")
	assert.Contains(t, out, "step")
	assert.Contains(t, out, `"epoch": 3`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_NoSinksIsNop(t *testing.T) {
	log, err := New("x", Config{Console: false}, nil)
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zap.ErrorLevel))
}

func TestNew_RotatingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradviz.log")

	log, err := New("gradviz", Config{Level: "debug", File: path}, nil)
	require.NoError(t, err)
	log.Debugw("written to file")
	require.NoError(t, log.Sync())

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("x", Config{Level: "loud", Console: true}, nil)
	assert.Error(t, err)
}
