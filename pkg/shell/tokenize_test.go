package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "only spaces", input: "   ", want: []string{}},
		{name: "single word", input: "help", want: []string{"help"}},
		{name: "two words", input: "a b", want: []string{"a", "b"}},
		{name: "repeated spaces collapse", input: "a   b ", want: []string{"a", "b"}},
		{name: "leading space", input: " a", want: []string{"a"}},
		{name: "quoted group", input: `a "b c" d`, want: []string{"a", "b c", "d"}},
		{name: "quotes join with neighbours", input: `pre"fix suf"fix`, want: []string{"prefix suffix"}},
		{name: "escaped space", input: `a\ b`, want: []string{"a b"}},
		{name: "escaped backslash", input: `a\\b`, want: []string{`a\b`}},
		{name: "escaped quote", input: `say \"hi\"`, want: []string{"say", `"hi"`}},
		{name: "escaped quote in quotes", input: `"a \" b"`, want: []string{`a " b`}},
		{name: "control escapes", input: `\n\r\t`, want: []string{"\n\r\t"}},
		{name: "explicit empty among others", input: `a "" b`, want: []string{"a", "", "b"}},
		{name: "lone empty quotes", input: `""`, want: []string{}},
		{name: "unicode", input: "grüß \"世界 🌍\"", want: []string{"grüß", "世界 🌍"}},
		{name: "tab is not a delimiter", input: "a\tb", want: []string{"a\tb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unclosed quotes", input: `a "b`, wantErr: ErrUnclosedQuotes},
		{name: "unclosed empty quote", input: `"`, wantErr: ErrUnclosedQuotes},
		{name: "unknown escape", input: `a \q`, wantErr: &ParseError{Kind: UnhandledEscapeSequence, Char: 'q'}},
		{name: "escaped space inside quotes", input: `"a\ b"`, wantErr: &ParseError{Kind: UnhandledEscapeSequence, Char: ' '}},
		{name: "trailing backslash", input: `a\`, wantErr: ErrUnterminatedEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenize_UnhandledEscapeCarriesChar(t *testing.T) {
	_, err := Tokenize(`x \z`)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, UnhandledEscapeSequence, perr.Kind)
	assert.Equal(t, 'z', perr.Char)
	assert.False(t, errors.Is(err, &ParseError{Kind: UnhandledEscapeSequence, Char: 'q'}))
}

func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"a b c",
		"  count   ",
		"greet bob",
		"echo one two three",
	}

	for _, in := range inputs {
		first, err := Tokenize(in)
		require.NoError(t, err)

		again, err := Tokenize(Join(first))
		require.NoError(t, err)
		assert.Equal(t, first, again, in)
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	tokens := []string{"cat", "my file.txt", `quote"d`, `back\slash`, "tab\there", "", "line\nbreak"}

	got, err := Tokenize(Join(tokens))
	require.NoError(t, err)
	assert.Equal(t, tokens, got)
}

func TestJoin_LoneEmptyTokenIsEmptyLine(t *testing.T) {
	assert.Equal(t, `""`, Join([]string{""}))

	got, err := Tokenize(Join([]string{""}))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Tokenize(Join([]string{"echo", ""}))
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", ""}, got)
}
