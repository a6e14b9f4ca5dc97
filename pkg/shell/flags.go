package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// BindFunc registers the flags of a command on fs, storing into args.
type BindFunc[A any] func(fs *pflag.FlagSet, args *A)

// FlagRunFunc is the body of a flag command. rest holds the positional
// arguments left after flag parsing.
type FlagRunFunc[T, A any] func(state *T, args *A, rest []string) error

type AsyncFlagRunFunc[T, A any] func(ctx context.Context, state *T, args *A, rest []string) error

type FlagOption func(*flagOptions)

type flagOptions struct {
	out io.Writer
}

// WithFlagOutput sets where -h/--help usage is printed. Defaults to os.Stdout.
func WithFlagOutput(w io.Writer) FlagOption {
	return func(o *flagOptions) { o.out = w }
}

// NewFlagCommand builds a sync command whose arguments are parsed with
// pflag into a fresh A on every call. Asking for -h or --help prints the
// usage and succeeds; any other parse error fails the command.
func NewFlagCommand[T, A any](help string, bind BindFunc[A], run FlagRunFunc[T, A], opts ...FlagOption) Command[T] {
	o := newFlagOptions(opts)
	return NewCommand(help, func(state *T, args []string) error {
		parsed, rest, ok, err := parseFlags(args, help, bind, o)
		if err != nil || !ok {
			return err
		}
		return run(state, parsed, rest)
	})
}

// NewAsyncFlagCommand is NewFlagCommand for async bodies.
func NewAsyncFlagCommand[T, A any](help string, bind BindFunc[A], run AsyncFlagRunFunc[T, A], opts ...FlagOption) Command[T] {
	o := newFlagOptions(opts)
	return NewAsyncCommand(help, func(ctx context.Context, state *T, args []string) error {
		parsed, rest, ok, err := parseFlags(args, help, bind, o)
		if err != nil || !ok {
			return err
		}
		return run(ctx, state, parsed, rest)
	})
}

func newFlagOptions(opts []FlagOption) flagOptions {
	o := flagOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// parseFlags reports ok=false with a nil error when help was printed.
func parseFlags[A any](args []string, help string, bind BindFunc[A], o flagOptions) (*A, []string, bool, error) {
	name := ""
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	parsed := new(A)
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(o.out)
	fs.Usage = func() {
		fmt.Fprintf(o.out, "%s\n\nUsage:\n  %s [flags]\n\nFlags:\n%s", help, name, fs.FlagUsages())
	}
	if bind != nil {
		bind(fs, parsed)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("invalid arguments: %w", err)
	}
	return parsed, fs.Args(), true, nil
}
