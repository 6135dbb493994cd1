package tilejson

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb/maptile"
)

// TileURL expands a tile endpoint template for a concrete tile. When the
// document lists multiple endpoints the choice is sharded deterministically
// by tile coordinate, the usual subdomain-rotation pattern. Under the tms
// scheme the y coordinate is flipped before substitution, so callers always
// pass slippy-map (xyz) tiles.
func (tj *TileJSON) TileURL(t maptile.Tile) (string, error) {
	if len(tj.Tiles) == 0 {
		return "", ErrNoTiles
	}

	return tj.expand(tj.Tiles[int(t.X+t.Y)%len(tj.Tiles)], t), nil
}

// GridURL expands a UTFGrid endpoint template for a concrete tile, with the
// same sharding and y-flip behavior as TileURL.
func (tj *TileJSON) GridURL(t maptile.Tile) (string, error) {
	if len(tj.Grids) == 0 {
		return "", ErrNoGrids
	}

	return tj.expand(tj.Grids[int(t.X+t.Y)%len(tj.Grids)], t), nil
}

func (tj *TileJSON) expand(template string, t maptile.Tile) string {
	y := t.Y
	if tj.Scheme == SchemeTMS {
		y = uint32(1)<<t.Z - 1 - t.Y
	}

	r := strings.NewReplacer(
		"{z}", strconv.FormatUint(uint64(t.Z), 10),
		"{x}", strconv.FormatUint(uint64(t.X), 10),
		"{y}", strconv.FormatUint(uint64(y), 10),
	)
	return r.Replace(template)
}
