package tilejson

import (
	"encoding/json"
	"io"
)

// DecodeError reports that input text could not be decoded into a TileJSON
// document, either because it is not valid JSON or because a field has a
// JSON type incompatible with the schema. The underlying cause is available
// through errors.As / errors.Is (json.SyntaxError, json.UnmarshalTypeError,
// ErrInvalidScheme).
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return "tilejson: decode: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses JSON text into a TileJSON document. Absent fields resolve to
// their schema defaults and unknown keys are ignored; decoding is otherwise
// all-or-nothing, failing with a *DecodeError on malformed JSON or a
// type-mismatched field.
func Decode(data []byte) (*TileJSON, error) {
	var tj TileJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &tj, nil
}

// Read decodes a TileJSON document from a reader. It reads the stream to EOF
// before decoding, matching Decode's all-or-nothing behavior.
func Read(r io.Reader) (*TileJSON, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}
