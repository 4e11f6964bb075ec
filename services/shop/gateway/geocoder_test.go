package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/coffeeshop/internal/pkg/constants"
	"github.com/piresc/coffeeshop/internal/pkg/database"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/internal/utils"
	"github.com/piresc/coffeeshop/services/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ferryBuildingResult = `[{"lat":"37.7955","lon":"-122.3937","display_name":"Ferry Building, San Francisco"}]`

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &database.RedisClient{Client: client}
}

func newNominatim(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func geocoderConfig(baseURL string) models.GeocoderConfig {
	return models.GeocoderConfig{
		Enabled:    true,
		BaseURL:    baseURL,
		UserAgent:  "coffeeshop-test",
		Timeout:    2 * time.Second,
		MaxRetries: 1,
		CacheTTL:   time.Hour,
	}
}

func TestGeocode_Success(t *testing.T) {
	server, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "1 Ferry Building", r.URL.Query().Get("q"))
		assert.Equal(t, "coffeeshop-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, ferryBuildingResult)
	})

	gw := NewGeocoder(geocoderConfig(server.URL), nil, nil)

	point, err := gw.Geocode(context.Background(), "1 Ferry Building")
	require.NoError(t, err)
	assert.Equal(t, models.Coordinates{Latitude: 37.7955, Longitude: -122.3937}, point)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestGeocode_NoResults(t *testing.T) {
	server, _ := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	gw := NewGeocoder(geocoderConfig(server.URL), nil, nil)

	_, err := gw.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, shop.ErrAddressNotFound)
}

func TestGeocode_RetriesServerErrors(t *testing.T) {
	var attempt int32
	server, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempt, 1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, ferryBuildingResult)
	})

	gw := NewGeocoder(geocoderConfig(server.URL), nil, nil)

	point, err := gw.Geocode(context.Background(), "1 Ferry Building")
	require.NoError(t, err)
	assert.Equal(t, 37.7955, point.Latitude)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestGeocode_ClientErrorNotRetried(t *testing.T) {
	server, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad query", http.StatusBadRequest)
	})

	gw := NewGeocoder(geocoderConfig(server.URL), nil, nil)

	_, err := gw.Geocode(context.Background(), "???")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geocoding request failed")
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestGeocode_MalformedCoordinates(t *testing.T) {
	server, _ := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"lat":"north","lon":"-122.3937"}]`)
	})

	gw := NewGeocoder(geocoderConfig(server.URL), nil, nil)

	_, err := gw.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid latitude")
}

func TestGeocode_CachesGeohash(t *testing.T) {
	mr, cache := setupMiniredis(t)
	server, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ferryBuildingResult)
	})

	gw := NewGeocoder(geocoderConfig(server.URL), cache, nil)

	first, err := gw.Geocode(context.Background(), "1 Ferry  Building")
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyGeocode, "1 ferry building")
	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, utils.EncodeCoordinates(first, constants.GeohashPrecision), stored)
	assert.Equal(t, time.Hour, mr.TTL(key))

	second, err := gw.Geocode(context.Background(), "1 FERRY BUILDING")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "second lookup served from cache")
	assert.InDelta(t, first.Latitude, second.Latitude, 1e-6)
	assert.InDelta(t, first.Longitude, second.Longitude, 1e-6)
}

func TestGeocode_CorruptCacheEntryFallsThrough(t *testing.T) {
	mr, cache := setupMiniredis(t)
	server, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ferryBuildingResult)
	})

	key := fmt.Sprintf(constants.KeyGeocode, "ferry building")
	require.NoError(t, mr.Set(key, "not-a-geohash!"))

	gw := NewGeocoder(geocoderConfig(server.URL), cache, nil)

	point, err := gw.Geocode(context.Background(), "Ferry Building")
	require.NoError(t, err)
	assert.Equal(t, 37.7955, point.Latitude)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestGeocode_CorruptCacheEntryEvicted(t *testing.T) {
	mr, cache := setupMiniredis(t)
	server, _ := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	key := fmt.Sprintf(constants.KeyGeocode, "atlantis")
	require.NoError(t, mr.Set(key, "not-a-geohash!"))

	gw := NewGeocoder(geocoderConfig(server.URL), cache, nil)

	_, err := gw.Geocode(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, shop.ErrAddressNotFound)
	assert.False(t, mr.Exists(key))
}

func TestGeocode_BudgetBoundsRetries(t *testing.T) {
	release := make(chan struct{})
	server, _ := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	cfg := geocoderConfig(server.URL)
	cfg.Timeout = time.Second
	cfg.MaxRetries = 2
	cfg.Budget = 300 * time.Millisecond
	gw := NewGeocoder(cfg, nil, nil)

	start := time.Now()
	_, err := gw.Geocode(context.Background(), "Ferry Building")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, time.Second)
}

func TestGeocode_CacheDownFallsThrough(t *testing.T) {
	mr, cache := setupMiniredis(t)
	server, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ferryBuildingResult)
	})
	mr.Close()

	gw := NewGeocoder(geocoderConfig(server.URL), cache, nil)

	point, err := gw.Geocode(context.Background(), "Ferry Building")
	require.NoError(t, err)
	assert.Equal(t, -122.3937, point.Longitude)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestGeocode_Disabled(t *testing.T) {
	gw := NewGeocoder(models.GeocoderConfig{Enabled: false}, nil, nil)

	_, err := gw.Geocode(context.Background(), "anywhere")
	assert.ErrorIs(t, err, shop.ErrNotImplemented)
}
