package shell

import "strings"

// Tokenize splits a line into arguments.
//
// Tokens are separated by unquoted spaces; runs of spaces never produce
// empty tokens, but an explicit "" does. Double quotes group words and are
// not emitted. A backslash escapes the next character: \\ \n \r \t \" and,
// outside quotes, a space.
func Tokenize(line string) ([]string, error) {
	var (
		tokens   []string
		current  strings.Builder
		started  bool
		inEscape bool
		inQuotes bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		started = false
	}

	for _, r := range line {
		if inEscape {
			inEscape = false
			switch {
			case r == '\\':
				current.WriteRune('\\')
			case r == 'n':
				current.WriteRune('\n')
			case r == 'r':
				current.WriteRune('\r')
			case r == 't':
				current.WriteRune('\t')
			case r == '"':
				current.WriteRune('"')
			case r == ' ' && !inQuotes:
				current.WriteRune(' ')
			default:
				return nil, &ParseError{Kind: UnhandledEscapeSequence, Char: r}
			}
			started = true
			continue
		}

		switch r {
		case '\\':
			inEscape = true
		case '"':
			inQuotes = !inQuotes
			started = true
		case ' ':
			if inQuotes {
				current.WriteRune(r)
				continue
			}
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if inQuotes {
		return nil, ErrUnclosedQuotes
	}
	if inEscape {
		return nil, ErrUnterminatedEscape
	}

	flush()
	if len(tokens) == 1 && tokens[0] == "" {
		return []string{}, nil
	}
	if tokens == nil {
		tokens = []string{}
	}
	return tokens, nil
}

// Join renders tokens back into a line that Tokenize splits the same way.
// The one exception is a lone empty token: Join gives `""`, which Tokenize
// reads as an empty line.
func Join(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = quote(tok)
	}
	return strings.Join(parts, " ")
}

func quote(tok string) string {
	if tok == "" {
		return `""`
	}

	var sb strings.Builder
	for _, r := range tok {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case ' ':
			sb.WriteString(`\ `)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
