package utils

import (
	"testing"

	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	blueBottle := models.Coordinates{Latitude: 37.79590475625579, Longitude: -122.39393759555746}

	tests := []struct {
		name      string
		from      models.Coordinates
		to        models.Coordinates
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			from:      blueBottle,
			to:        blueBottle,
			expected:  0,
			tolerance: 1e-9,
		},
		{
			name:      "One degree of longitude on the equator",
			from:      models.Coordinates{Latitude: 0, Longitude: 0},
			to:        models.Coordinates{Latitude: 0, Longitude: 1},
			expected:  111319.49,
			tolerance: 0.01,
		},
		{
			name:      "Pole to pole",
			from:      models.Coordinates{Latitude: 90, Longitude: 0},
			to:        models.Coordinates{Latitude: -90, Longitude: 0},
			expected:  EarthRadiusMeters * 3.141592653589793,
			tolerance: 1e-6,
		},
		{
			name:      "Ferry Building to Union Square (approximately)",
			from:      blueBottle,
			to:        models.Coordinates{Latitude: 37.7879, Longitude: -122.4075},
			expected:  1500,
			tolerance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.from, tt.to)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
			assert.InDelta(t, got, HaversineDistance(tt.to, tt.from), 1e-6, "distance must be symmetric")
		})
	}
}

func TestGeohashRoundTrip(t *testing.T) {
	c := models.Coordinates{Latitude: 37.79590475625579, Longitude: -122.39393759555746}

	hash := EncodeCoordinates(c, 12)
	assert.Len(t, hash, 12)

	decoded, ok := DecodeGeohash(hash)
	assert.True(t, ok)
	assert.InDelta(t, c.Latitude, decoded.Latitude, 1e-6)
	assert.InDelta(t, c.Longitude, decoded.Longitude, 1e-6)
}

func TestDecodeGeohash_Invalid(t *testing.T) {
	for _, hash := range []string{"", "abc!", "ailo", "0123456789bcdefg"} {
		_, ok := DecodeGeohash(hash)
		assert.False(t, ok, hash)
	}
}
