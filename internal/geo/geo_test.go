package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceSamePoint(t *testing.T) {
	p := Point{Lat: 43.6532, Lon: -79.3832}
	assert.InDelta(t, 0.0, Distance(p, p), 1e-9)
}

func TestDistanceKnownOffsets(t *testing.T) {
	origin := Point{}

	// one degree of longitude on the equator
	assert.InDelta(t, 111.19, Distance(origin, Point{Lon: 1}), 0.05)
	// half a degree
	assert.InDelta(t, 55.60, Distance(origin, Point{Lon: 0.5}), 0.05)
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 43.65, Lon: -79.38}, {Lat: 45.50, Lon: -73.57}},
		{{Lat: 0, Lon: 0}, {Lat: -33.87, Lon: 151.21}},
		{{Lat: 89.9, Lon: 10}, {Lat: -89.9, Lon: -170}},
	}
	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]), 1e-9)
	}
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lat: 90, Lon: 180}.Valid())
	assert.True(t, Point{Lat: -90, Lon: -180}.Valid())
	assert.False(t, Point{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lon: -180.1}.Valid())
}

func TestRankEmpty(t *testing.T) {
	ranked, err := Rank(Point{}, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankOrdersByDistance(t *testing.T) {
	origin := Point{}
	// ~3km, ~1km, ~2km north of the origin, deliberately out of order
	candidates := []Candidate{
		{Point: Point{Lat: 0.027}, Name: "three"},
		{Point: Point{Lat: 0.009}, Name: "one"},
		{Point: Point{Lat: 0.018}, Name: "two"},
	}

	ranked, err := Rank(origin, candidates, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "one", ranked[0].Name)
	assert.Equal(t, "two", ranked[1].Name)
	assert.Equal(t, "three", ranked[2].Name)

	limited, err := Rank(origin, candidates, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "one", limited[0].Name)
	assert.Equal(t, "two", limited[1].Name)
}

func TestRankSpecExample(t *testing.T) {
	ranked, err := Rank(Point{}, []Candidate{
		{Point: Point{Lon: 1}, Name: "far"},
		{Point: Point{Lon: 0.5}, Name: "near"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "near", ranked[0].Name)
	assert.InDelta(t, 55.6, ranked[0].DistanceKm, 0.1)
	assert.Equal(t, "far", ranked[1].Name)
	assert.InDelta(t, 111.2, ranked[1].DistanceKm, 0.1)
}

func TestRankStableOnTies(t *testing.T) {
	origin := Point{}
	candidates := []Candidate{
		{Point: Point{Lat: 0.01}, Name: "first"},
		{Point: Point{Lat: 0.01}, Name: "second"},
		{Point: Point{Lat: 0.01}, Name: "third"},
	}

	ranked, err := Rank(origin, candidates, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestRankInvalidOrigin(t *testing.T) {
	_, err := Rank(Point{Lat: 120}, []Candidate{{Point: Point{Lat: 1}}}, 0)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestRankDropsInvalidCandidates(t *testing.T) {
	ranked, err := Rank(Point{}, []Candidate{
		{Point: Point{Lat: 95}, Name: "bogus"},
		{Point: Point{Lat: 0.01}, Name: "real"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "real", ranked[0].Name)
}
