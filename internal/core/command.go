package core

import "github.com/sandevgo/tuskshell/pkg/shell"

type Command interface {
	Name() string
	Description() string
	Build() shell.Command[Session]
}
