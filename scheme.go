package tilejson

import "encoding/json"

// Scheme is the y direction convention of tile coordinates. The zero value
// is SchemeXYZ, the schema default.
type Scheme uint8

const (
	// SchemeXYZ counts tile rows from the top (the slippy map convention).
	SchemeXYZ Scheme = iota
	// SchemeTMS counts tile rows from the bottom.
	SchemeTMS
)

// String returns the wire label, "xyz" or "tms".
func (s Scheme) String() string {
	if s == SchemeTMS {
		return "tms"
	}
	return "xyz"
}

// MarshalJSON implements json.Marshaler using the wire labels.
func (s Scheme) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. Anything other than the strings
// "xyz" and "tms" is rejected.
func (s *Scheme) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return ErrInvalidScheme
	}

	switch label {
	case "xyz":
		*s = SchemeXYZ
	case "tms":
		*s = SchemeTMS
	default:
		return ErrInvalidScheme
	}

	return nil
}
