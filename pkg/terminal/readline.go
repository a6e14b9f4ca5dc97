package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tuskshell/pkg/shell"
)

type Config struct {
	// HistoryFile is created on first use. Empty disables history.
	HistoryFile  string
	HistoryLimit int
	// Completions are offered as first words on TAB.
	Completions []string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// ReadLine is a shell.LineSource backed by a line editor with history.
type ReadLine struct {
	rl *readline.Instance
}

func NewReadLine(cfg Config) (*ReadLine, error) {
	if cfg.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	var completer readline.AutoCompleter
	if len(cfg.Completions) > 0 {
		items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Completions))
		for _, name := range cfg.Completions {
			items = append(items, readline.PcItem(name))
		}
		completer = readline.NewPrefixCompleter(items...)
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    cfg.HistoryLimit,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &ReadLine{rl: rl}, nil
}

func (r *ReadLine) Read(prompt string) (shell.Input, error) {
	r.rl.SetPrompt(prompt)
	return toInput(r.rl.Readline())
}

// Stdout is a writer that does not corrupt the line being edited.
func (r *ReadLine) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *ReadLine) Stderr() io.Writer {
	return r.rl.Stderr()
}

func (r *ReadLine) Close() error {
	return r.rl.Close()
}

func toInput(line string, err error) (shell.Input, error) {
	switch {
	case err == nil:
		return shell.Text(line), nil
	case errors.Is(err, readline.ErrInterrupt):
		return shell.Interrupted, nil
	case errors.Is(err, io.EOF):
		return shell.EOF, nil
	default:
		return shell.Input{}, err
	}
}
