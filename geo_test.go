package tilejson

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestBound(t *testing.T) {
	tj := New()
	tj.Bounds = []Coordinate{-180, -85, 180, 85}

	assert.Equal(t, orb.Bound{
		Min: orb.Point{-180, -85},
		Max: orb.Point{180, 85},
	}, tj.Bound())
}

func TestBoundFallback(t *testing.T) {
	want := orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

	tj := &TileJSON{}
	assert.Equal(t, want, tj.Bound())

	tj.Bounds = []Coordinate{-180, -90, 180}
	assert.Equal(t, want, tj.Bound())
}

func TestSetBound(t *testing.T) {
	tj := New()
	tj.SetBound(orb.Bound{Min: orb.Point{5.9, 45.8}, Max: orb.Point{10.5, 47.8}})

	assert.Equal(t, []Coordinate{5.9, 45.8, 10.5, 47.8}, tj.Bounds)
}

func TestCenterPoint(t *testing.T) {
	tj := New()

	_, _, ok := tj.CenterPoint()
	assert.False(t, ok)

	tj.SetCenter(orb.Point{13.4050, 52.5200}, 10)
	assert.Equal(t, []Coordinate{13.4050, 52.5200, 10}, tj.Center)

	point, zoom, ok := tj.CenterPoint()
	assert.True(t, ok)
	assert.Equal(t, orb.Point{13.4050, 52.5200}, point)
	assert.Equal(t, float64(10), zoom)
}
