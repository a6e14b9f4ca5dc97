package statestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Count uint64   `json:"count" toml:"count"`
	Names []string `json:"names" toml:"names"`
}

func TestCodecs(t *testing.T) {
	tests := []struct {
		name  string
		codec interface {
			Marshal(any) ([]byte, error)
			Unmarshal([]byte, any) error
			Ext() string
		}
		ext     string
		snippet string
	}{
		{name: "json", codec: JSONCodec{}, ext: ".json", snippet: `"count":3`},
		{name: "toml", codec: TOMLCodec{}, ext: ".toml", snippet: "count = 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sample{Count: 3, Names: []string{"a b", `q"uote`}}

			data, err := tt.codec.Marshal(in)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.snippet)

			var out sample
			require.NoError(t, tt.codec.Unmarshal(data, &out))
			assert.Equal(t, in, out)
			assert.Equal(t, tt.ext, tt.codec.Ext())
		})
	}
}

func TestCodecs_Malformed(t *testing.T) {
	var out sample
	assert.Error(t, JSONCodec{}.Unmarshal([]byte(`{"count":`), &out))
	assert.Error(t, TOMLCodec{}.Unmarshal([]byte(`count = = 1`), &out))
}
