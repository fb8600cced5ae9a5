package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Run.Epochs)
	assert.Equal(t, 0.0, cfg.Run.LR)
	assert.Equal(t, 50, cfg.Run.Every)
	assert.Equal(t, "frames", cfg.Run.Out)
	assert.Equal(t, 480, cfg.Render.Width)
	assert.Equal(t, 360, cfg.Render.Height)
	assert.Equal(t, 1.0, cfg.Render.Scale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GRADVIZ_RUN_EPOCHS", "42")
	t.Setenv("GRADVIZ_RUN_LR", "0.25")
	t.Setenv("GRADVIZ_RUN_INTERVAL", "15ms")
	t.Setenv("GRADVIZ_RENDER_NO_AXIS", "true")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Run.Epochs)
	assert.Equal(t, 0.25, cfg.Run.LR)
	assert.Equal(t, 15*time.Millisecond, cfg.Run.Interval)
	assert.True(t, cfg.Render.HideAxis)
}

func TestBindFlags_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("GRADVIZ_RUN_EPOCHS", "42")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("epochs", 500, "")
	require.NoError(t, fs.Parse([]string{"--epochs=7"}))

	v := New()
	require.NoError(t, BindFlags(v, fs, map[string]string{"epochs": KeyEpochs}))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Run.Epochs)

	assert.Error(t, BindFlags(v, fs, map[string]string{"missing": KeyLR}))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "run:\n  epochs: 12\n  out: out/xor\nrender:\n  width: 200\n  scale: 2\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Run.Epochs)
	assert.Equal(t, "out/xor", cfg.Run.Out)
	assert.Equal(t, 200, cfg.Render.Width)
	assert.Equal(t, 2.0, cfg.Render.Scale)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestReadFile_Lookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gradviz.yaml"), []byte("run:\n  every: 5\n"), 0o600))
	t.Setenv(PathEnv, dir)

	v := New()
	require.NoError(t, ReadFile(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Run.Every)
}

func TestReadFile_Missing(t *testing.T) {
	t.Setenv(PathEnv, t.TempDir())

	assert.NoError(t, ReadFile(New(), ""))
	assert.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestValidate(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	bad := cfg
	bad.Run.LR = -1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Log.Level = "loud"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Render.Scale = -2
	assert.Error(t, bad.Validate())
}
