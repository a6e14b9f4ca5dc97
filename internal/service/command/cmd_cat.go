package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/conv"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentReads = 4

type CatArgs struct {
	Number   bool
	Markdown bool
}

type CatCommand struct {
	out io.Writer
}

func NewCatCommand(out io.Writer) *CatCommand {
	return &CatCommand{out: out}
}

func (c *CatCommand) Name() string {
	return "cat"
}

func (c *CatCommand) Description() string {
	return "displays plaintext files."
}

func (c *CatCommand) Build() shell.Command[core.Session] {
	bind := func(fs *pflag.FlagSet, args *CatArgs) {
		fs.BoolVarP(&args.Number, "number", "n", false, "number all output lines")
		fs.BoolVarP(&args.Markdown, "markdown", "m", false, "render markdown as plain text")
	}
	return shell.NewAsyncFlagCommand(c.Description(), bind, c.execute, shell.WithFlagOutput(c.out))
}

func (c *CatCommand) execute(ctx context.Context, _ *core.Session, args *CatArgs, paths []string) error {
	if len(paths) == 0 {
		return errors.New("no files specified")
	}

	contents, err := readAll(ctx, paths, args.Markdown)
	if err != nil {
		return err
	}

	line := 0
	for _, content := range contents {
		if !args.Number {
			if _, err := fmt.Fprintln(c.out, content); err != nil {
				return err
			}
			continue
		}

		for _, text := range splitLines(content) {
			line++
			if _, err := fmt.Fprintf(c.out, "%6d\t%s\n", line, text); err != nil {
				return err
			}
		}
	}
	return nil
}

// readAll loads paths concurrently and returns them in argument order.
// Nothing is returned if any file fails.
func readAll(ctx context.Context, paths []string, markdown bool) ([]string, error) {
	contents := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			if !markdown {
				contents[i] = string(data)
				return nil
			}
			if contents[i], err = conv.MarkdownToText(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
