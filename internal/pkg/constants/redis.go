package constants

// Redis key formats
const (
	// KeyGeocode caches the geohash of a normalized address
	KeyGeocode = "geocode:%s"
)

// GeohashPrecision is used for cached coordinates (~3.7cm cells)
const GeohashPrecision = 12
