package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "saves", cfg.SaveDir)
	assert.Equal(t, "8080", cfg.Port)
	assert.NotZero(t, cfg.Seed)
}

func TestLoadConfig_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dusk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\nsave_dir: data\nport: \"9000\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.SaveDir)
	assert.Equal(t, "9000", cfg.Port)

	t.Setenv("DUSK_PORT", "9100")
	t.Setenv("DUSK_SEED", "7")

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [oops"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	t.Setenv("DUSK_SEED", "not-a-number")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestConfig_NewRNGIsSeeded(t *testing.T) {
	cfg := Config{Seed: 5}
	assert.Equal(t, cfg.NewRNG().Int63(), cfg.NewRNG().Int63())
}
