package shell

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sandevgo/tuskshell/pkg/log"
)

// Shell is an interactive read-tokenize-dispatch loop over a state value.
type Shell[T any] struct {
	Prompt string
	// PromptFunc, when set, overrides Prompt and is evaluated before every read.
	PromptFunc  func(state *T) string
	Commands    *Registry[T]
	State       T
	Handler     *Handler[T]
	Description string
	Input       LineSource
}

// New creates a shell that runs sync commands only and reads from stdin.
func New[T any](prompt string, state T, opts ...Option) *Shell[T] {
	return NewWithHandler(prompt, state, NewHandler[T](Interactive(), opts...), DefaultStdioSource())
}

// NewAsync creates a shell that also awaits async commands.
func NewAsync[T any](prompt string, state T, opts ...Option) *Shell[T] {
	return NewWithHandler(prompt, state, NewHandler[T](InteractiveAsync(), opts...), DefaultStdioSource())
}

func NewWithHandler[T any](prompt string, state T, handler *Handler[T], input LineSource) *Shell[T] {
	return &Shell[T]{
		Prompt:   prompt,
		Commands: NewRegistry[T](),
		State:    state,
		Handler:  handler,
		Input:    input,
	}
}

// Register is shorthand for s.Commands.Register.
func (s *Shell[T]) Register(name string, cmd Command[T]) *Shell[T] {
	s.Commands.Register(name, cmd)
	return s
}

// Run reads lines until end of input, a quit command, a transport error
// or cancellation of ctx. Only the last two are returned as errors.
func (s *Shell[T]) Run(ctx context.Context) error {
	sessionID := uuid.NewString()
	logger := log.FromCtx(ctx).With().Str("session", sessionID).Logger()
	ctx = logger.WithContext(ctx)

	logger.Debug().Int("commands", s.Commands.Len()).Msg("shell session started")
	defer func() { logger.Debug().Msg("shell session finished") }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		prompt := s.Prompt
		if s.PromptFunc != nil {
			prompt = s.PromptFunc(&s.State)
		}

		in, err := s.Input.Read(prompt)
		if err != nil {
			return &TransportError{Err: err}
		}

		switch in.Kind {
		case InputEOF:
			return nil
		case InputInterrupted:
			continue
		}

		tokens, err := Tokenize(trimLine(in.Text))
		if err != nil {
			s.Handler.Report(ctx, err)
			continue
		}

		if s.Handler.Handle(ctx, tokens, s.Commands, &s.State, s.Description) {
			return nil
		}
	}
}

// trimLine strips surrounding whitespace but keeps a trailing character
// that is escaped, so `a\ ` still ends in a space.
func trimLine(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if len(trimmed) == len(line) {
		return trimmed
	}

	backslashes := len(trimmed) - len(strings.TrimRight(trimmed, `\`))
	if backslashes%2 == 0 {
		return trimmed
	}
	_, size := utf8.DecodeRuneInString(line[len(trimmed):])
	return line[:len(trimmed)+size]
}
