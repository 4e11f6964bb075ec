package utils

import (
	"math"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/coffeeshop/internal/pkg/models"
)

// EarthRadiusMeters is the WGS84 equatorial radius
const EarthRadiusMeters = 6378137.0

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// EncodeCoordinates converts coordinates to a geohash string
func EncodeCoordinates(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the center of the geohash cell. Invalid hashes are
// rejected so a corrupt cache entry is never mistaken for a location.
func DecodeGeohash(hash string) (models.Coordinates, bool) {
	if hash == "" || len(hash) > 12 || strings.Trim(hash, geohashAlphabet) != "" {
		return models.Coordinates{}, false
	}
	lat, lng := geohash.Decode(hash)
	return models.Coordinates{Latitude: lat, Longitude: lng}, true
}

// HaversineDistance returns the great-circle distance in meters between two
// points on a sphere of radius EarthRadiusMeters
func HaversineDistance(from, to models.Coordinates) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	dLat := toRadians(to.Latitude - from.Latitude)
	dLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
