package command

import (
	"io"

	"github.com/sandevgo/tuskshell/internal/core"
)

func NewCommands(out io.Writer) []core.Command {
	return []core.Command{
		NewGreetCommand(out),
		NewEchoCommand(out),
		NewCountCommand(out),
		NewCatCommand(out),
		NewHelloCommand(out),
		NewSeenCommand(out),
	}
}
