package terminal

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tuskshell/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInput(t *testing.T) {
	broken := errors.New("broken pipe")

	tests := []struct {
		name    string
		line    string
		err     error
		want    shell.Input
		wantErr error
	}{
		{name: "text", line: "greet bob", want: shell.Text("greet bob")},
		{name: "empty text", line: "", want: shell.Text("")},
		{name: "interrupt with partial line", line: "gre", err: readline.ErrInterrupt, want: shell.Interrupted},
		{name: "eof", err: io.EOF, want: shell.EOF},
		{name: "wrapped eof", err: fmt.Errorf("read: %w", io.EOF), want: shell.EOF},
		{name: "transport failure", err: broken, wantErr: broken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toInput(tt.line, tt.err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
