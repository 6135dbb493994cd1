package tilejson

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Coordinate is a single WGS:84 coordinate value (or, as the third center
// element, a zoom level). It decodes like a plain float64 — integer and
// floating-point literals are equivalent — but always serializes with a
// decimal point, so -180 becomes -180.0 on the wire. Existing TileJSON
// tooling compares documents byte for byte and expects that form.
type Coordinate float64

// MarshalJSON implements json.Marshaler.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &json.UnsupportedValueError{
			Value: reflect.ValueOf(f),
			Str:   strconv.FormatFloat(f, 'g', -1, 64),
		}
	}

	// Shortest round-trip form, exponent notation only for magnitudes
	// encoding/json itself would not print in fixed form.
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b := strconv.AppendFloat(make([]byte, 0, 24), f, format, -1, 64)

	if !bytes.ContainsAny(b, ".eE") {
		b = append(b, '.', '0')
	}
	return b, nil
}
