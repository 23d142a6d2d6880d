package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini-2025-08-07", cfg.OpenAI.Model)
	assert.Equal(t, "./output", cfg.Output.Dir)
	assert.Equal(t, 120, cfg.OpenAI.TimeoutSeconds)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-live")
	t.Setenv("OPENAI_MODEL", "gpt-5")
	t.Setenv("OUTPUT_DIR", "/tmp/results")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sk-live", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-5", cfg.OpenAI.Model)
	assert.Equal(t, "/tmp/results", cfg.Output.Dir)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openai:\n  model: from-file\noutput:\n  dir: file-dir\n"), 0o600))
	t.Setenv("OUTPUT_DIR", "env-dir")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.OpenAI.Model)
	assert.Equal(t, "env-dir", cfg.Output.Dir, "environment wins over the file")
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini-2025-08-07", cfg.OpenAI.Model)
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := Config{Output: OutputConfig{Dir: t.TempDir()}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PlaceholderKey(t *testing.T) {
	cfg := Config{
		OpenAI: OpenAIConfig{APIKey: "sk-your-api-key-here"},
		Output: OutputConfig{Dir: t.TempDir()},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	cfg := Config{
		OpenAI: OpenAIConfig{APIKey: "sk-live"},
		Output: OutputConfig{Dir: dir},
	}
	require.NoError(t, cfg.Validate())

	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}
