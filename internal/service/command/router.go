package command

import (
	"github.com/sandevgo/tuskshell/internal/core"
	"github.com/sandevgo/tuskshell/pkg/shell"
)

// Install registers commands in order, so help lists them as given.
func Install(registry *shell.Registry[core.Session], commands []core.Command) *shell.Registry[core.Session] {
	for _, cmd := range commands {
		registry.Register(cmd.Name(), cmd.Build())
	}
	return registry
}

func Names(commands []core.Command) []string {
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}
	return names
}
