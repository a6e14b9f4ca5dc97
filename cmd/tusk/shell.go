package main

import (
	"io"

	"github.com/sandevgo/tuskshell/internal/config"
	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/internal/service/command"
	"github.com/sandevgo/tuskshell/internal/service/ui"
	"github.com/sandevgo/tuskshell/pkg/log"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/sandevgo/tuskshell/pkg/srv"
	"github.com/sandevgo/tuskshell/pkg/terminal"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// console is a line source that also owns the terminal's output, so
// command output does not garble the line being edited.
type console interface {
	shell.LineSource
	Stdout() io.Writer
	Stderr() io.Writer
}

func runShell(cmd *cobra.Command) error {
	ctx, cfg, flushLog, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer flushLog()

	logger := log.FromCtx(ctx)

	rl, err := terminal.NewReadLine(terminal.Config{
		HistoryFile: cfg.GetHistoryPath(),
		Completions: completions(),
	})
	if err != nil {
		return err
	}
	sh := newInteractive(cfg, rl)

	logger.Debug().Msg("interactive shell started")
	err = srv.Run(ctx,
		srv.NewFunc(sh.Run),
		srv.NewCleanup(rl.Close),
	)
	logger.Debug().Msg("interactive shell stopped")
	return err
}

func newInteractive(cfg *config.AppConfig, con console) *shell.Shell[core.Session] {
	sh := newSession(con.Stdout(), con.Stderr())
	sh.Prompt = ui.Prompt(cfg.Prompt)
	sh.Input = con
	return sh
}

func completions() []string {
	return append([]string{"help", "quit", "exit"}, command.Names(command.NewCommands(nil))...)
}
