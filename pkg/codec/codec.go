package codec

import (
	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec marshals and unmarshals values to and from bytes.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec encodes values as JSON text.
type JSONCodec struct{}

func NewJSON() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// CBORCodec encodes values in the compact self-describing CBOR format.
// fxamacker/cbor falls back to json struct tags, so the binary encoding
// carries the same field names as the JSON one.
type CBORCodec struct{}

func NewCBOR() *CBORCodec {
	return &CBORCodec{}
}

func (c *CBORCodec) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (c *CBORCodec) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
