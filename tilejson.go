// Package tilejson provides TileJSON 2.2.0 metadata support for tiled map
// data sources. It round-trips TileJSON documents between their JSON text
// form and a typed TileJSON value, applying the schema defaults for absent
// fields and the per-field omission rules on output.
package tilejson

import (
	"encoding/json"
	"errors"
)

// Common errors returned by this package.
var (
	ErrInvalidScheme = errors.New(`tilejson: scheme must be "xyz" or "tms"`)
	ErrNoTiles       = errors.New("tilejson: at least one tile endpoint is required")
	ErrNoGrids       = errors.New("tilejson: document has no grid endpoints")
	ErrZoomRange     = errors.New("tilejson: zoom levels must satisfy minzoom <= maxzoom <= 30")
	ErrInvalidBounds = errors.New("tilejson: bounds must hold exactly four values (left, bottom, right, top)")
	ErrInvalidCenter = errors.New("tilejson: center must hold exactly three values (longitude, latitude, zoom)")
	ErrCenterOutside = errors.New("tilejson: center must lie within bounds and the zoom range")
)

// Schema defaults. Absent fields resolve to these values during decoding,
// and New builds its document from them.
const (
	// SpecVersion is the version of the TileJSON specification implemented
	// by this package.
	SpecVersion = "2.2.0"

	// DefaultVersion is the dataset version used when none is given.
	DefaultVersion = "1.0.0"

	DefaultMinZoom uint8 = 0
	DefaultMaxZoom uint8 = 30
)

// DefaultBounds returns the default maximum extent, the whole WGS:84 world
// in left, bottom, right, top order.
func DefaultBounds() []Coordinate {
	return []Coordinate{-180, -90, 180, 90}
}

// TileJSON describes a set of tiled map/data endpoints. Field declaration
// order matches the serialized key order. Optional display fields are
// pointers and are omitted from output when nil; Grids, Data and Center are
// omitted when empty, while Tiles and Bounds are always emitted.
type TileJSON struct {
	// TileJSON is the specification version implemented by the document,
	// semver style. Required by the schema.
	TileJSON string `json:"tilejson"`

	// Name describes the tileset. Consumers should not interpret it as HTML.
	Name *string `json:"name,omitempty"`

	// Description is free text describing the tileset.
	Description *string `json:"description,omitempty"`

	// Version is the semver-style version of the tile data itself.
	Version string `json:"version"`

	// Attribution is displayed when the map is shown to a user. Consumers
	// decide whether to treat it as HTML or literal text.
	Attribution *string `json:"attribution,omitempty"`

	// Template is a mustache template used to format grid data for
	// interaction, per the UTFGrid specification.
	Template *string `json:"template,omitempty"`

	// Legend is displayed alongside the map.
	Legend *string `json:"legend,omitempty"`

	// Scheme is the y direction convention of the tile coordinates.
	Scheme Scheme `json:"scheme"`

	// Tiles holds the tile endpoint templates; {z}, {x} and {y} are replaced
	// with tile coordinates. The schema requires at least one endpoint, but
	// neither decoding nor encoding enforces that; see Validate.
	Tiles []string `json:"tiles"`

	// Grids holds UTFGrid interactivity endpoint templates.
	Grids []string `json:"grids,omitempty"`

	// Data holds GeoJSON data file endpoint templates.
	Data []string `json:"data,omitempty"`

	// MinZoom and MaxZoom bound the available zoom range, 0 through 30.
	MinZoom uint8 `json:"minzoom"`
	MaxZoom uint8 `json:"maxzoom"`

	// Bounds is the maximum extent of available tiles in WGS:84 longitude
	// and latitude, ordered left, bottom, right, top.
	Bounds []Coordinate `json:"bounds"`

	// Center is an optional default view: longitude, latitude, zoom. When
	// nil, consumers pick their own default location.
	Center []Coordinate `json:"center,omitempty"`
}

// New returns a document populated with the schema defaults: spec version
// 2.2.0, dataset version 1.0.0, xyz scheme, no endpoints, the full zoom
// range and world bounds, and every optional field absent.
func New() *TileJSON {
	return &TileJSON{
		TileJSON: SpecVersion,
		Version:  DefaultVersion,
		Scheme:   SchemeXYZ,
		Tiles:    []string{},
		Grids:    []string{},
		Data:     []string{},
		MinZoom:  DefaultMinZoom,
		MaxZoom:  DefaultMaxZoom,
		Bounds:   DefaultBounds(),
	}
}

// MarshalJSON implements json.Marshaler. Nil Tiles marshals as [] and nil
// Bounds as the default extent, so any in-memory value serializes to a
// schema-shaped object.
func (tj TileJSON) MarshalJSON() ([]byte, error) {
	type alias TileJSON

	a := alias(tj)
	if a.Tiles == nil {
		a.Tiles = []string{}
	}
	if a.Bounds == nil {
		a.Bounds = DefaultBounds()
	}

	return json.Marshal(a)
}

// UnmarshalJSON implements json.Unmarshaler. Fields absent from the input
// keep their schema default, unknown keys are ignored, and a field of the
// wrong JSON type is an error.
func (tj *TileJSON) UnmarshalJSON(data []byte) error {
	type alias TileJSON

	a := alias(*New())
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*tj = TileJSON(a)
	return nil
}

// Validate checks the semantic constraints the schema documents but the
// codec deliberately leaves unenforced: at least one tile endpoint, an
// ordered zoom range within 0..30, four bounds values, and a three-value
// center inside both the bounds and the zoom range. Decode and Encode never
// call it; strict consumers do.
func (tj *TileJSON) Validate() error {
	if len(tj.Tiles) == 0 {
		return ErrNoTiles
	}
	if tj.MinZoom > tj.MaxZoom || tj.MaxZoom > 30 {
		return ErrZoomRange
	}
	if len(tj.Bounds) != 4 {
		return ErrInvalidBounds
	}

	if tj.Center == nil {
		return nil
	}
	if len(tj.Center) != 3 {
		return ErrInvalidCenter
	}

	zoom := float64(tj.Center[2])
	if zoom < float64(tj.MinZoom) || zoom > float64(tj.MaxZoom) {
		return ErrCenterOutside
	}
	point, _, _ := tj.CenterPoint()
	if !tj.Bound().Contains(point) {
		return ErrCenterOutside
	}

	return nil
}
