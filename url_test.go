package tilejson

import (
	"testing"

	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileURL(t *testing.T) {
	tj := New()
	tj.Tiles = []string{"https://tiles.example.com/{z}/{x}/{y}.png"}

	url, err := tj.TileURL(maptile.New(550, 335, 10))
	require.NoError(t, err)
	assert.Equal(t, "https://tiles.example.com/10/550/335.png", url)
}

func TestTileURLFlipsYForTMS(t *testing.T) {
	tj := New()
	tj.Scheme = SchemeTMS
	tj.Tiles = []string{"https://tiles.example.com/{z}/{x}/{y}.png"}

	// At zoom 2 there are 4 rows, so xyz row 1 is tms row 2.
	url, err := tj.TileURL(maptile.New(3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "https://tiles.example.com/2/3/2.png", url)
}

func TestTileURLSharding(t *testing.T) {
	tj := New()
	tj.Tiles = []string{
		"https://a.tile.example.com/{z}/{x}/{y}.png",
		"https://b.tile.example.com/{z}/{x}/{y}.png",
		"https://c.tile.example.com/{z}/{x}/{y}.png",
	}

	// Deterministic per tile: x+y modulo the endpoint count.
	url, err := tj.TileURL(maptile.New(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "https://a.tile.example.com/1/0/0.png", url)

	url, err = tj.TileURL(maptile.New(1, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "https://b.tile.example.com/1/1/0.png", url)

	url, err = tj.TileURL(maptile.New(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "https://c.tile.example.com/1/1/1.png", url)

	// Same tile always picks the same endpoint.
	again, err := tj.TileURL(maptile.New(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, url, again)
}

func TestTileURLNoEndpoints(t *testing.T) {
	_, err := New().TileURL(maptile.New(0, 0, 0))
	assert.ErrorIs(t, err, ErrNoTiles)
}

func TestGridURL(t *testing.T) {
	tj := New()
	tj.Grids = []string{"https://tiles.example.com/{z}/{x}/{y}.grid.json"}

	url, err := tj.GridURL(maptile.New(550, 335, 10))
	require.NoError(t, err)
	assert.Equal(t, "https://tiles.example.com/10/550/335.grid.json", url)

	_, err = New().GridURL(maptile.New(0, 0, 0))
	assert.ErrorIs(t, err, ErrNoGrids)
}
