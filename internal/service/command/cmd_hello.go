package command

import (
	"fmt"
	"io"

	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/spf13/pflag"
)

type HelloArgs struct {
	Age    uint8
	Formal bool
}

// HelloCommand greets a person, with its options parsed as flags.
type HelloCommand struct {
	out io.Writer
}

func NewHelloCommand(out io.Writer) *HelloCommand {
	return &HelloCommand{out: out}
}

func (c *HelloCommand) Name() string {
	return "hello"
}

func (c *HelloCommand) Description() string {
	return "greets a person by name, see --help for options."
}

func (c *HelloCommand) Build() shell.Command[core.Session] {
	bind := func(fs *pflag.FlagSet, args *HelloArgs) {
		fs.Uint8VarP(&args.Age, "age", "a", 0, "age of the person to greet")
		fs.BoolVarP(&args.Formal, "formal", "f", false, "whether to be formal")
	}
	return shell.NewFlagCommand(c.Description(), bind, c.execute, shell.WithFlagOutput(c.out))
}

func (c *HelloCommand) execute(state *core.Session, args *HelloArgs, rest []string) error {
	if len(rest) != 1 {
		return fmt.Errorf("expected exactly one name, got %d", len(rest))
	}
	name := rest[0]
	state.Remember(name)

	var msg string
	switch {
	case args.Formal && args.Age > 0:
		msg = fmt.Sprintf("Good day %s, you are %d years old.", name, args.Age)
	case args.Formal:
		msg = fmt.Sprintf("Good day %s.", name)
	case args.Age > 0:
		msg = fmt.Sprintf("Hi %s, you're %d years old.", name, args.Age)
	default:
		msg = fmt.Sprintf("Hi %s!", name)
	}

	_, err := fmt.Fprintln(c.out, msg)
	return err
}
