package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskshell/internal/config"
	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/internal/service/command"
	"github.com/sandevgo/tuskshell/pkg/log"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/sandevgo/tuskshell/pkg/statestore"
)

// bootstrap loads the runtime .env and config, then installs the logger.
// The returned func flushes the logger.
func bootstrap(ctx context.Context) (context.Context, *config.AppConfig, func(), error) {
	envErr := initEnv(config.GetRuntimePath())

	cfg, err := config.NewAppConfig()
	if err != nil {
		return ctx, nil, func() {}, err
	}

	ctx, flushLog := log.NewContextWithLogger(ctx, log.Options{
		Debug: debug || cfg.Debug,
		JSON:  cfg.LogFormat == "json",
	})

	logger := log.FromCtx(ctx)
	if envErr != nil {
		logger.Warn().Err(envErr).Str("path", cfg.GetEnvPath()).Msg("failed to load .env file")
	}
	logger.Debug().
		Str("project", cfg.Project).
		Str("backend", cfg.StateBackend).
		Str("format", cfg.StateFormat).
		Msg("config loaded")

	return ctx, cfg, flushLog, nil
}

func initEnv(runtimePath string) error {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return godotenv.Load(envFile)
}

// newSession builds the command set shared by the interactive shell and
// one-shot runs. The caller attaches an input source before running it.
func newSession(out, errOut io.Writer) *shell.Shell[core.Session] {
	handler := shell.NewHandler[core.Session](shell.InteractiveAsync(),
		shell.WithOutput(out),
		shell.WithErrorOutput(errOut),
	)

	sh := shell.NewWithHandler("", core.Session{}, handler, nil)
	sh.Description = core.TuskDescription
	command.Install(sh.Commands, command.NewCommands(out))
	return sh
}

// newStore opens the configured state backend. The returned func releases it.
func newStore(ctx context.Context, cfg *config.AppConfig) (shell.Store, func() error, error) {
	path, err := cfg.GetStatePath()
	if err != nil {
		return nil, nil, err
	}
	log.FromCtx(ctx).Debug().Str("path", path).Msg("using state store")

	if cfg.StateBackend == config.BackendSQLite {
		store, err := statestore.OpenSQLite(ctx, path, cfg.Project)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	return statestore.NewFileStore(path), func() error { return nil }, nil
}
