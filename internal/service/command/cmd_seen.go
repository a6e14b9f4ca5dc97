package command

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/shell"
)

type SeenCommand struct {
	out       io.Writer
	formatter *ResponseFormatter
}

func NewSeenCommand(out io.Writer) *SeenCommand {
	return &SeenCommand{
		out:       out,
		formatter: NewResponseFormatter(),
	}
}

func (c *SeenCommand) Name() string {
	return "seen"
}

func (c *SeenCommand) Description() string {
	return "shows the counter and recently greeted names."
}

func (c *SeenCommand) Build() shell.Command[core.Session] {
	return shell.NewCommand(c.Description(), func(state *core.Session, _ []string) error {
		sections := []string{
			c.formatter.Title("Session"),
			c.formatter.Label("count", strconv.FormatUint(state.Count, 10)),
		}
		if len(state.LastSeen) == 0 {
			sections = append(sections, c.formatter.Usage("greet <name>"))
		} else {
			sections = append(sections, c.formatter.List(state.LastSeen))
		}

		_, err := fmt.Fprint(c.out, c.formatter.Combine(sections...))
		return err
	})
}
