package tilejson

import "github.com/paulmach/orb"

// Bound returns the document bounds as an orb.Bound. A Bounds field that
// does not hold exactly four values falls back to the default world extent.
func (tj *TileJSON) Bound() orb.Bound {
	b := tj.Bounds
	if len(b) != 4 {
		b = DefaultBounds()
	}

	return orb.Bound{
		Min: orb.Point{float64(b[0]), float64(b[1])},
		Max: orb.Point{float64(b[2]), float64(b[3])},
	}
}

// SetBound stores an orb.Bound in left, bottom, right, top order.
func (tj *TileJSON) SetBound(b orb.Bound) {
	tj.Bounds = []Coordinate{
		Coordinate(b.Min[0]),
		Coordinate(b.Min[1]),
		Coordinate(b.Max[0]),
		Coordinate(b.Max[1]),
	}
}

// CenterPoint returns the default view as an orb.Point plus zoom level. The
// boolean is false when the document carries no usable center.
func (tj *TileJSON) CenterPoint() (orb.Point, float64, bool) {
	if len(tj.Center) != 3 {
		return orb.Point{}, 0, false
	}

	point := orb.Point{float64(tj.Center[0]), float64(tj.Center[1])}
	return point, float64(tj.Center[2]), true
}

// SetCenter stores a default view location and zoom.
func (tj *TileJSON) SetCenter(p orb.Point, zoom uint8) {
	tj.Center = []Coordinate{Coordinate(p[0]), Coordinate(p[1]), Coordinate(zoom)}
}
