package shell

import (
	"errors"
	"fmt"
)

type ParseErrorKind int

const (
	UnhandledEscapeSequence ParseErrorKind = iota
	UnclosedQuotes
	UnterminatedEscape
)

// ParseError is returned by Tokenize when a line cannot be split.
// Char is only set for UnhandledEscapeSequence.
type ParseError struct {
	Kind ParseErrorKind
	Char rune
}

var (
	ErrUnclosedQuotes     = &ParseError{Kind: UnclosedQuotes}
	ErrUnterminatedEscape = &ParseError{Kind: UnterminatedEscape}
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnhandledEscapeSequence:
		return fmt.Sprintf("unhandled escape sequence: \\%c", e.Char)
	case UnclosedQuotes:
		return "unclosed quotes"
	case UnterminatedEscape:
		return "unterminated escape sequence at end of line"
	default:
		return "parse error"
	}
}

// Is matches another ParseError of the same kind. A zero Char on the
// target matches any character.
func (e *ParseError) Is(target error) bool {
	var t *ParseError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Char == 0 || t.Char == e.Char)
}

type DispatchErrorKind int

const (
	CommandNotFound DispatchErrorKind = iota
	UnsupportedAsync
)

// DispatchError reports a line that named no runnable command.
type DispatchError struct {
	Kind DispatchErrorKind
	Name string
	// Surface names the kind of session in messages ("shells" or "apps").
	Surface string
}

func (e *DispatchError) Error() string {
	switch e.Kind {
	case CommandNotFound:
		return "Command not found: " + e.Name
	case UnsupportedAsync:
		surface := e.Surface
		if surface == "" {
			surface = "shells"
		}
		return fmt.Sprintf("Async commands cannot be run in sync %s.", surface)
	default:
		return "dispatch error: " + e.Name
	}
}

func (e *DispatchError) Is(target error) bool {
	var t *DispatchError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Name == "" || t.Name == e.Name)
}

var (
	ErrCommandNotFound  = &DispatchError{Kind: CommandNotFound}
	ErrUnsupportedAsync = &DispatchError{Kind: UnsupportedAsync}
)

// CommandError wraps a failure returned by a command's action.
type CommandError struct {
	Name string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Command exited unsuccessfully:\n%v", e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// StateStoreError is a failure to load, save or clear persisted state.
type StateStoreError struct {
	Op  string
	Err error
}

func (e *StateStoreError) Error() string {
	return fmt.Sprintf("failed to %s state: %v", e.Op, e.Err)
}

func (e *StateStoreError) Unwrap() error {
	return e.Err
}

// TransportError is a failure of the line source. It ends the session.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
