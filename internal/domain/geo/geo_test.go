package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := Coordinate{Latitude: 12.9716, Longitude: 77.5946}

	assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	mgRoad := Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	koramangala := Coordinate{Latitude: 12.9352, Longitude: 77.6245}

	assert.InDelta(t, DistanceKm(mgRoad, koramangala), DistanceKm(koramangala, mgRoad), 1e-9)
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		from      Coordinate
		to        Coordinate
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "MG Road to Koramangala",
			from:      Coordinate{Latitude: 12.9716, Longitude: 77.5946},
			to:        Coordinate{Latitude: 12.9352, Longitude: 77.6245},
			wantKm:    5.2,
			tolerance: 0.2,
		},
		{
			name:      "one degree of latitude",
			from:      Coordinate{Latitude: 12.0, Longitude: 77.0},
			to:        Coordinate{Latitude: 13.0, Longitude: 77.0},
			wantKm:    111.2,
			tolerance: 0.5,
		},
		{
			name:      "antipodal points are half the circumference away",
			from:      Coordinate{Latitude: 0, Longitude: 0},
			to:        Coordinate{Latitude: 0, Longitude: 180},
			wantKm:    math.Pi * 6371.0,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, DistanceKm(tt.from, tt.to), tt.tolerance)
		})
	}
}

func TestRoundKm(t *testing.T) {
	assert.InDelta(t, 5.19, RoundKm(5.19482), 1e-9)
	assert.InDelta(t, 5.2, RoundKm(5.195), 1e-9)
	assert.InDelta(t, 0, RoundKm(0.004), 1e-9)
}

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"bengaluru", Coordinate{12.9716, 77.5946}, true},
		{"lat upper bound", Coordinate{90, 0}, true},
		{"lat lower bound", Coordinate{-90, 0}, true},
		{"lng bounds", Coordinate{0, -180}, true},
		{"lat too large", Coordinate{90.0001, 0}, false},
		{"lng too large", Coordinate{0, 180.0001}, false},
		{"NaN latitude", Coordinate{math.NaN(), 77}, false},
		{"infinite longitude", Coordinate{12, math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}

func TestBoxAround_EnclosesRadius(t *testing.T) {
	center := Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	box := BoxAround(center, 5)

	// Points just inside the radius in each cardinal direction must fall
	// inside the box, otherwise the pre-filter would drop real candidates.
	for _, p := range []Coordinate{
		{center.Latitude + 0.044, center.Longitude}, // ~4.9 km north
		{center.Latitude - 0.044, center.Longitude},
		{center.Latitude, center.Longitude + 0.045}, // ~4.9 km east
		{center.Latitude, center.Longitude - 0.045},
	} {
		assert.True(t, box.Contains(p), "expected %+v inside box %+v", p, box)
		assert.LessOrEqual(t, DistanceKm(center, p), 5.0)
	}
}

func TestBoxAround_ClampsAtPoles(t *testing.T) {
	box := BoxAround(Coordinate{Latitude: 89.9, Longitude: 0}, 50)

	assert.Equal(t, 90.0, box.MaxLat)
	assert.Equal(t, -180.0, box.MinLng)
	assert.Equal(t, 180.0, box.MaxLng)
}

func TestBoundingBoxContains_BordersInclusive(t *testing.T) {
	box := BoundingBox{MinLat: 10, MaxLat: 20, MinLng: 70, MaxLng: 80}

	assert.True(t, box.Contains(Coordinate{10, 70}))
	assert.True(t, box.Contains(Coordinate{20, 80}))
	assert.False(t, box.Contains(Coordinate{9.999, 75}))
	assert.False(t, box.Contains(Coordinate{15, 80.001}))
}
