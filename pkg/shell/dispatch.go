package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskshell/pkg/log"
	"golang.org/x/sync/errgroup"
)

type HelpLayout int

const (
	// HelpInteractive lists "    name - help" rows after the description.
	HelpInteractive HelpLayout = iota
	// HelpCommandLine prints a USAGE block and padded SUBCOMMAND columns.
	HelpCommandLine
)

// Personality configures the dispatch algorithm. All four stock
// personalities share the same Handler implementation.
type Personality struct {
	QuitNames       []string
	HelpNames       []string
	SkipProgramName bool
	AllowAsync      bool
	Layout          HelpLayout
	Surface         string
}

func Interactive() Personality {
	return Personality{
		QuitNames: []string{"quit", "exit"},
		HelpNames: []string{"help"},
		Layout:    HelpInteractive,
		Surface:   "shells",
	}
}

func InteractiveAsync() Personality {
	p := Interactive()
	p.AllowAsync = true
	return p
}

func CommandLine() Personality {
	return Personality{
		QuitNames:       []string{"quit", "exit", "--quit", "--exit"},
		HelpNames:       []string{"help", "--help"},
		SkipProgramName: true,
		Layout:          HelpCommandLine,
		Surface:         "apps",
	}
}

func CommandLineAsync() Personality {
	p := CommandLine()
	p.AllowAsync = true
	return p
}

// Reporter receives per-line failures such as *ParseError, *DispatchError
// and *CommandError.
type Reporter func(ctx context.Context, err error)

type Option func(*options)

type options struct {
	out         io.Writer
	errOut      io.Writer
	reporter    Reporter
	projectName string
}

// WithOutput sets where help text is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithErrorOutput sets where the default reporter writes. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(o *options) { o.errOut = w }
}

func WithReporter(r Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithProjectName sets the name shown in the command-line USAGE block.
// When empty the program name token is used.
func WithProjectName(name string) Option {
	return func(o *options) { o.projectName = name }
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

type builtin struct {
	name string
	help string
}

var (
	interactiveBuiltins = []builtin{
		{"help", "displays help information."},
		{"quit", "quits the shell."},
		{"exit", "exits the shell."},
	}
	commandLineBuiltins = []builtin{
		{"help", "displays help information."},
		{"quit", "deletes all temporary state information."},
		{"exit", "deletes all temporary state information."},
	}
)

// Handler runs one tokenized line against a registry.
type Handler[T any] struct {
	personality Personality
	opts        options
}

func NewHandler[T any](p Personality, opts ...Option) *Handler[T] {
	o := options{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	h := &Handler[T]{personality: p, opts: o}
	if h.opts.reporter == nil {
		h.opts.reporter = h.printError
	}
	return h
}

func (h *Handler[T]) Personality() Personality {
	return h.personality
}

// Handle dispatches line and reports whether the session should end.
// Command failures are reported, never returned.
func (h *Handler[T]) Handle(ctx context.Context, line []string, commands *Registry[T], state *T, description string) bool {
	p := h.personality

	var program string
	if p.SkipProgramName {
		if len(line) == 0 {
			return false
		}
		program, line = line[0], line[1:]
	}
	if len(line) == 0 {
		return false
	}

	name := line[0]
	if p.Layout == HelpInteractive {
		fmt.Fprintln(h.opts.out)
	}

	switch {
	case slices.Contains(p.QuitNames, name):
		return true
	case slices.Contains(p.HelpNames, name):
		h.printHelp(program, commands, description)
	default:
		h.run(ctx, name, line, commands, state)
	}

	fmt.Fprintln(h.opts.out)
	return false
}

func (h *Handler[T]) run(ctx context.Context, name string, args []string, commands *Registry[T], state *T) {
	logger := log.FromCtx(ctx)

	cmd, ok := commands.Lookup(name)
	if !ok {
		h.opts.reporter(ctx, &DispatchError{Kind: CommandNotFound, Name: name, Surface: h.personality.Surface})
		return
	}

	start := time.Now()
	var err error
	switch cmd.kind {
	case ActionSync:
		err = cmd.sync(state, args)
	case ActionAsync:
		if !h.personality.AllowAsync {
			h.opts.reporter(ctx, &DispatchError{Kind: UnsupportedAsync, Name: name, Surface: h.personality.Surface})
			return
		}
		err = await(ctx, cmd.async, state, args)
	}

	logger.Debug().
		Str("command", name).
		Stringer("kind", cmd.kind).
		Dur("took", time.Since(start)).
		Bool("failed", err != nil).
		Msg("command finished")

	if err != nil {
		h.opts.reporter(ctx, &CommandError{Name: name, Err: err})
	}
}

// await runs fn off the session goroutine and blocks until it returns.
// The context fn receives ends when fn does, so background work it
// started under that context is stopped with the command.
func await[T any](ctx context.Context, fn AsyncFunc[T], state *T, args []string) error {
	g, cmdCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fn(cmdCtx, state, args)
	})
	return g.Wait()
}

// Report hands err to the configured reporter.
func (h *Handler[T]) Report(ctx context.Context, err error) {
	h.opts.reporter(ctx, err)
}

func (h *Handler[T]) printHelp(program string, commands *Registry[T], description string) {
	out := h.opts.out
	if h.personality.Layout == HelpInteractive {
		fmt.Fprintln(out, description)
		for _, b := range interactiveBuiltins {
			fmt.Fprintf(out, "    %s - %s\n", b.name, b.help)
		}
		if commands != nil {
			for name, cmd := range commands.All() {
				fmt.Fprintf(out, "    %s - %s\n", name, cmd.Help())
			}
		}
		return
	}

	usage := h.opts.projectName
	if usage == "" {
		usage = program
	}

	fmt.Fprintln(out, program)
	fmt.Fprintln(out, description)
	fmt.Fprintln(out, "USAGE:")
	fmt.Fprintf(out, "    %s [SUBCOMMAND]\n", usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Where [SUBCOMMAND] is one of:")

	rows := slices.Clone(commandLineBuiltins)
	width := 4
	if commands != nil {
		for name, cmd := range commands.All() {
			rows = append(rows, builtin{name, cmd.Help()})
			width = max(width, len(name))
		}
	}
	for _, row := range rows {
		fmt.Fprintf(out, "    %-*s%s\n", width+5, row.name, row.help)
	}
}

func (h *Handler[T]) printError(ctx context.Context, err error) {
	log.FromCtx(ctx).Debug().Err(err).Msg("command line failed")
	fmt.Fprintln(h.opts.errOut, errorStyle.Render(err.Error()))
}
