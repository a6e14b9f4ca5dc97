package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandevgo/tuskshell/pkg/statestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := NewAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "tusk", cfg.Project)
	assert.Equal(t, "tusk> ", cfg.Prompt)
	assert.True(t, cfg.History)
	assert.Equal(t, BackendFile, cfg.StateBackend)
	assert.Equal(t, FormatJSON, cfg.StateFormat)
	assert.Equal(t, filepath.Join(home, ".tuskshell"), cfg.GetRuntimePath())
	assert.Equal(t, filepath.Join(home, ".tuskshell", "history"), cfg.GetHistoryPath())
	assert.IsType(t, statestore.JSONCodec{}, cfg.Codec())
}

func TestNewAppConfig_FromEnv(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("TUSK_RUNTIME_PATH", runtime)
	t.Setenv("TUSK_PROJECT", "demo")
	t.Setenv("TUSK_HISTORY", "false")
	t.Setenv("TUSK_STATE_BACKEND", "sqlite")
	t.Setenv("TUSK_STATE_FORMAT", "toml")
	t.Setenv("TUSK_DEBUG", "1")

	cfg, err := NewAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Project)
	assert.True(t, cfg.Debug)
	assert.Empty(t, cfg.GetHistoryPath())
	assert.IsType(t, statestore.TOMLCodec{}, cfg.Codec())

	path, err := cfg.GetStatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(runtime, "state.db"), path)
}

func TestNewAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown backend", key: "TUSK_STATE_BACKEND", val: "redis"},
		{name: "unknown format", key: "TUSK_STATE_FORMAT", val: "yaml"},
		{name: "bad bool", key: "TUSK_HISTORY", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewAppConfig()
			assert.Error(t, err)
		})
	}
}

func TestAppConfig_GetStatePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("explicit path wins", func(t *testing.T) {
		cfg := AppConfig{StatePath: "/var/lib/tusk/state.json", Project: "p", StateBackend: BackendFile}
		path, err := cfg.GetStatePath()
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/tusk/state.json", path)
	})

	t.Run("file backend uses cache dir", func(t *testing.T) {
		cfg := AppConfig{Project: "p", StateBackend: BackendFile, StateFormat: FormatTOML}
		path, err := cfg.GetStatePath()
		require.NoError(t, err)
		assert.Equal(t, "tuskshell.toml", filepath.Base(path))
		assert.True(t, strings.HasPrefix(path, home), path)
		assert.Equal(t, "p", filepath.Base(filepath.Dir(path)))
	})
}

func TestIsDebug(t *testing.T) {
	t.Setenv("TUSK_DEBUG", "true")
	assert.True(t, IsDebug())

	t.Setenv("TUSK_DEBUG", "0")
	assert.False(t, IsDebug())
}

func TestFromEnvMap(t *testing.T) {
	t.Setenv("TUSK_PROJECT", "from-process")

	cfg, err := FromEnvMap(map[string]string{
		"TUSK_PROMPT":        "demo$ ",
		"TUSK_STATE_BACKEND": "sqlite",
	})
	require.NoError(t, err)

	assert.Equal(t, "tusk", cfg.Project)
	assert.Equal(t, "demo$ ", cfg.Prompt)
	assert.Equal(t, BackendSQLite, cfg.StateBackend)

	_, err = FromEnvMap(map[string]string{"TUSK_STATE_FORMAT": "yaml"})
	assert.Error(t, err)
}
