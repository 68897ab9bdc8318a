package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "assets", cfg.Assets.Dir)
	assert.Equal(t, ".ogg", cfg.Assets.Ext)
	assert.Equal(t, FrontendTUI, cfg.Frontend)
	assert.Empty(t, cfg.Font)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Frontend = FrontendTcell
	cfg.Volume = -1.5
	cfg.Font = "assets/knewave.ttf"
	cfg.Log = LogConfig{Level: "debug", File: "/tmp/abc.log"}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("mute: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Mute)
	assert.Equal(t, "assets", cfg.Assets.Dir)
	assert.Equal(t, FrontendTUI, cfg.Frontend)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("frontend: [\n"), 0644))
	_, err = Load(bad)
	require.Error(t, err)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("frontend: sdl\n"), 0644))
	_, err = Load(unknown)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
