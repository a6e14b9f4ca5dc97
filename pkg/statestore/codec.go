package statestore

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
)

// JSONCodec encodes state as compact JSON.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Ext() string {
	return ".json"
}

// TOMLCodec encodes state as a TOML document. The state must be a struct
// or a map with string keys.
type TOMLCodec struct{}

func (TOMLCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

func (TOMLCodec) Ext() string {
	return ".toml"
}
