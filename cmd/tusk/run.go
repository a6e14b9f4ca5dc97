package main

import (
	"github.com/sandevgo/tuskshell/pkg/log"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a single command, keeping state between runs",
	Long: `Runs one shell command with the remaining arguments passed through
untouched, flags included. State is saved after every run and deleted by
"tusk run quit".`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runApp(cmd *cobra.Command, args []string) error {
	ctx, cfg, flushLog, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer flushLog()

	logger := log.FromCtx(ctx)

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("failed to close state store")
		}
	}()

	app, err := shell.AppFromShell(ctx,
		newSession(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		cfg.Project,
		shell.WithStore(store),
		shell.WithCodec(cfg.Codec()),
		shell.WithDispatchOptions(
			shell.WithOutput(cmd.OutOrStdout()),
			shell.WithErrorOutput(cmd.ErrOrStderr()),
		),
	)
	if err != nil {
		return err
	}

	argv := append([]string{cmd.Root().Name()}, args...)
	quit, err := app.Run(ctx, argv)
	if err != nil {
		return err
	}

	logger.Debug().Bool("quit", quit).Msg("command run finished")
	return nil
}
