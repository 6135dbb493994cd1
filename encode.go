package tilejson

import (
	"encoding/json"
	"io"
)

// Encode serializes a document to its JSON text form. Keys appear in schema
// order; absent optional fields and empty Grids/Data are omitted entirely,
// while Tiles and Bounds are always emitted. Encode performs no semantic
// validation (see Validate) and fails only when a Coordinate is NaN or
// infinite.
func Encode(tj *TileJSON) ([]byte, error) {
	return json.Marshal(tj)
}

// Write encodes a document to a writer.
func Write(w io.Writer, tj *TileJSON) error {
	data, err := Encode(tj)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
