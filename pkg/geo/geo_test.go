package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Каир -> Александрия, примерно 180 км по прямой
	dist := DistanceKm(30.0444, 31.2357, 31.2001, 29.9187)
	assert.InDelta(t, 180.0, dist, 5.0)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	dist := DistanceKm(30.0618, 31.2186, 30.0618, 31.2186)
	assert.Equal(t, 0.0, dist)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"cairo-alexandria", 30.0444, 31.2357, 31.2001, 29.9187},
		{"equator", 0, 0, 0, 90},
		{"poles", 90, 0, -90, 0},
		{"negative coords", -33.8688, 151.2093, 51.5074, -0.1278},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forward := DistanceKm(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			backward := DistanceKm(tc.lat2, tc.lon2, tc.lat1, tc.lon1)
			assert.InDelta(t, forward, backward, 1e-9)
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(30.0618, 31.2186))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.False(t, ValidCoordinates(200, 31.0))
	assert.False(t, ValidCoordinates(30.0, -181))
}
