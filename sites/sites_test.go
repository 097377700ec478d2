package sites

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/osuushi/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		input := "# sites\n0 0\n\n  100.5   -3\n-1e2 7\n"
		points, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []voronoi.Point{{X: 0, Y: 0}, {X: 100.5, Y: -3}, {X: -100, Y: 7}}, points)
	})

	t.Run("empty", func(t *testing.T) {
		points, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := Read(strings.NewReader("0 0\n1 2 3\n"))
		assert.EqualError(t, err, "line 2: expected \"x y\", got \"1 2 3\"")
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := Read(strings.NewReader("0 zero\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1: invalid y value \"zero\"")
	})
}

func TestReadSVG(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <g transform="scale(1,-1)">
    <circle cx="1" cy="2" r="1"/>
    <rect x="0" y="0" width="1" height="1"/>
    <circle cx="-3.5" cy="4" r="1"/>
  </g>
</svg>`
	points, err := ReadSVG(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Point{{X: 1, Y: 2}, {X: -3.5, Y: 4}}, points)

	_, err = ReadSVG(strings.NewReader(`<svg><circle cx="a" cy="1"/></svg>`))
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	points := Random(rand.New(rand.NewSource(1)), 100, 50)
	require.Len(t, points, 100)
	for _, p := range points {
		assert.True(t, p.X >= -50 && p.X <= 50, "x out of range: %v", p)
		assert.True(t, p.Y >= -50 && p.Y <= 50, "y out of range: %v", p)
	}

	again := Random(rand.New(rand.NewSource(1)), 100, 50)
	assert.Equal(t, points, again)
}
