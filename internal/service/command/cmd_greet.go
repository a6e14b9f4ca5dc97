package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/shell"
)

var ErrNoName = errors.New("no name specified")

type GreetCommand struct {
	out io.Writer
}

func NewGreetCommand(out io.Writer) *GreetCommand {
	return &GreetCommand{out: out}
}

func (c *GreetCommand) Name() string {
	return "greet"
}

func (c *GreetCommand) Description() string {
	return "greets you."
}

func (c *GreetCommand) Build() shell.Command[core.Session] {
	return shell.NewCommand(c.Description(), c.execute)
}

func (c *GreetCommand) execute(state *core.Session, args []string) error {
	if len(args) < 2 {
		return ErrNoName
	}
	state.Remember(args[1])
	_, err := fmt.Fprintf(c.out, "Greetings %s, my good friend.\n", args[1])
	return err
}
