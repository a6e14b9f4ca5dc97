package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type InputKind int

const (
	InputText InputKind = iota
	InputInterrupted
	InputEOF
)

// Input is one result of reading from a LineSource.
type Input struct {
	Kind InputKind
	Text string
}

func Text(s string) Input {
	return Input{Kind: InputText, Text: s}
}

var (
	Interrupted = Input{Kind: InputInterrupted}
	EOF         = Input{Kind: InputEOF}
)

// LineSource supplies lines to the interactive loop. An error is a
// transport failure and ends the session.
type LineSource interface {
	Read(prompt string) (Input, error)
}

// LineSourceFunc adapts a function to LineSource.
type LineSourceFunc func(prompt string) (Input, error)

func (f LineSourceFunc) Read(prompt string) (Input, error) {
	return f(prompt)
}

// StdioSource prints the prompt and reads newline-terminated lines.
type StdioSource struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdioSource(in io.Reader, out io.Writer) *StdioSource {
	return &StdioSource{in: bufio.NewReader(in), out: out}
}

func DefaultStdioSource() *StdioSource {
	return NewStdioSource(os.Stdin, os.Stdout)
}

func (s *StdioSource) Read(prompt string) (Input, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return Input{}, err
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return EOF, nil
			}
			return Text(strings.TrimRight(line, "\r")), nil
		}
		return Input{}, err
	}
	return Text(strings.TrimRight(line, "\r\n")), nil
}
