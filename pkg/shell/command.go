package shell

import (
	"context"
	"iter"
	"slices"
)

type ActionKind int

const (
	ActionSync ActionKind = iota
	ActionAsync
)

func (k ActionKind) String() string {
	if k == ActionAsync {
		return "async"
	}
	return "sync"
}

// SyncFunc is a command body run on the session goroutine. args[0] is the
// name the command was invoked with.
type SyncFunc[T any] func(state *T, args []string) error

// AsyncFunc is a command body that may block on I/O. The dispatcher always
// waits for it to return before reading the next line.
type AsyncFunc[T any] func(ctx context.Context, state *T, args []string) error

// Command is an immutable registry entry. Its action kind is fixed by the
// constructor used to build it.
type Command[T any] struct {
	help  string
	kind  ActionKind
	sync  SyncFunc[T]
	async AsyncFunc[T]
}

func NewCommand[T any](help string, fn SyncFunc[T]) Command[T] {
	if fn == nil {
		panic("shell: nil command function")
	}
	return Command[T]{help: help, kind: ActionSync, sync: fn}
}

func NewAsyncCommand[T any](help string, fn AsyncFunc[T]) Command[T] {
	if fn == nil {
		panic("shell: nil command function")
	}
	return Command[T]{help: help, kind: ActionAsync, async: fn}
}

func (c Command[T]) Help() string {
	return c.help
}

func (c Command[T]) Kind() ActionKind {
	return c.kind
}

// Registry maps command names to commands. Listing follows insertion
// order; registering an existing name replaces the command in place.
type Registry[T any] struct {
	commands map[string]Command[T]
	order    []string
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		commands: make(map[string]Command[T]),
	}
}

// Register adds cmd under name and returns the registry for chaining.
// It panics on an empty name since no line can ever invoke it.
func (r *Registry[T]) Register(name string, cmd Command[T]) *Registry[T] {
	if name == "" {
		panic("shell: empty command name")
	}
	if r.commands == nil {
		r.commands = make(map[string]Command[T])
	}
	if _, ok := r.commands[name]; !ok {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
	return r
}

func (r *Registry[T]) Lookup(name string) (Command[T], bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

func (r *Registry[T]) Remove(name string) bool {
	if _, ok := r.commands[name]; !ok {
		return false
	}
	delete(r.commands, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return true
}

func (r *Registry[T]) Len() int {
	return len(r.order)
}

func (r *Registry[T]) Names() []string {
	return slices.Clone(r.order)
}

// All yields registered commands in insertion order.
func (r *Registry[T]) All() iter.Seq2[string, Command[T]] {
	return func(yield func(string, Command[T]) bool) {
		for _, name := range r.order {
			if !yield(name, r.commands[name]) {
				return
			}
		}
	}
}
