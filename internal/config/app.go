package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/sandevgo/tuskshell/pkg/statestore"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	FormatJSON = "json"
	FormatTOML = "toml"
)

type AppConfig struct {
	RuntimePath string `env:"TUSK_RUNTIME_PATH" envDefault:".tuskshell"`
	Project     string `env:"TUSK_PROJECT" envDefault:"tusk"`

	// Interactive session
	Prompt  string `env:"TUSK_PROMPT" envDefault:"tusk> "`
	History bool   `env:"TUSK_HISTORY" envDefault:"true"`

	// State persistence for one-shot runs
	StateBackend string `env:"TUSK_STATE_BACKEND" envDefault:"file"`
	StateFormat  string `env:"TUSK_STATE_FORMAT" envDefault:"json"`
	StatePath    string `env:"TUSK_STATE_PATH"`

	LogFormat string `env:"TUSK_LOG_FORMAT" envDefault:"console"`
	Debug     bool   `env:"TUSK_DEBUG"`
}

func NewAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromEnvMap builds a config from vars alone, ignoring the process
// environment. Missing keys fall back to their defaults.
func FromEnvMap(vars map[string]string) (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.ParseWithOptions(c, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c AppConfig) Validate() error {
	switch c.StateBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown state backend %q", c.StateBackend)
	}
	switch c.StateFormat {
	case FormatJSON, FormatTOML:
	default:
		return fmt.Errorf("unknown state format %q", c.StateFormat)
	}
	if c.Project == "" {
		return fmt.Errorf("project name must not be empty")
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return absFromHome(c.RuntimePath)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.GetRuntimePath(), ".env")
}

// GetHistoryPath returns an empty path when history is disabled.
func (c AppConfig) GetHistoryPath() string {
	if !c.History {
		return ""
	}
	return filepath.Join(c.GetRuntimePath(), "history")
}

func (c AppConfig) Codec() shell.Codec {
	if c.StateFormat == FormatTOML {
		return statestore.TOMLCodec{}
	}
	return statestore.JSONCodec{}
}

// GetStatePath resolves where state is persisted. The file backend
// defaults to the per-user cache directory of the project; the sqlite
// backend keeps one database in the runtime directory.
func (c AppConfig) GetStatePath() (string, error) {
	if c.StatePath != "" {
		return absFromHome(c.StatePath), nil
	}

	if c.StateBackend == BackendSQLite {
		return filepath.Join(c.GetRuntimePath(), "state.db"), nil
	}

	dir, err := statestore.DefaultCacheDir(c.Project)
	if err != nil {
		return "", err
	}
	ext := statestore.JSONCodec{}.Ext()
	if c.StateFormat == FormatTOML {
		ext = statestore.TOMLCodec{}.Ext()
	}
	return filepath.Join(dir, "tuskshell"+ext), nil
}
