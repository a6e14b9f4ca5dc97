package command

import (
	"fmt"
	"io"

	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/shell"
)

type CountCommand struct {
	out io.Writer
}

func NewCountCommand(out io.Writer) *CountCommand {
	return &CountCommand{out: out}
}

func (c *CountCommand) Name() string {
	return "count"
}

func (c *CountCommand) Description() string {
	return "increments a counter."
}

func (c *CountCommand) Build() shell.Command[core.Session] {
	return shell.NewCommand(c.Description(), func(state *core.Session, _ []string) error {
		state.Count++
		_, err := fmt.Fprintf(c.out, "You have used this counter %d times\n", state.Count)
		return err
	})
}
