package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/shell"
)

type EchoCommand struct {
	out io.Writer
}

func NewEchoCommand(out io.Writer) *EchoCommand {
	return &EchoCommand{out: out}
}

func (c *EchoCommand) Name() string {
	return "echo"
}

func (c *EchoCommand) Description() string {
	return "prints the input."
}

func (c *EchoCommand) Build() shell.Command[core.Session] {
	return shell.NewCommand(c.Description(), func(_ *core.Session, args []string) error {
		_, err := fmt.Fprintln(c.out, strings.Join(args[1:], " "))
		return err
	})
}
