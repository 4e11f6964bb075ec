package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/piresc/coffeeshop/internal/pkg/constants"
	"github.com/piresc/coffeeshop/internal/pkg/database"
	httpclient "github.com/piresc/coffeeshop/internal/pkg/http"
	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/internal/utils"
	"github.com/piresc/coffeeshop/services/shop"
)

// searchResult is one entry of a Nominatim /search answer
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGeocoder resolves addresses through a Nominatim compatible API,
// optionally caching answers in Redis as geohashes
type NominatimGeocoder struct {
	client   *httpclient.Client
	cache    *database.RedisClient
	cacheTTL time.Duration
	budget   time.Duration
	log      *logger.ZapLogger
}

// NewGeocoder builds the geocoder gateway from config. A disabled geocoder
// answers every lookup with shop.ErrNotImplemented. cache may be nil.
func NewGeocoder(cfg models.GeocoderConfig, cache *database.RedisClient, log *logger.ZapLogger) shop.GeocoderGW {
	if !cfg.Enabled {
		return disabledGeocoder{}
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	client := httpclient.NewClient(httpclient.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}, log)

	return &NominatimGeocoder{
		client:   client,
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		budget:   cfg.Budget,
		log:      log,
	}
}

// Geocode returns the coordinates of the best match for address. The whole
// lookup, retries included, ends within the configured budget.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	if g.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.budget)
		defer cancel()
	}

	key := fmt.Sprintf(constants.KeyGeocode, utils.NormalizeAddress(address))

	if point, ok := g.fromCache(ctx, key); ok {
		return point, nil
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", address)

	var results []searchResult
	if err := g.client.GetJSON(ctx, "/search", query, &results); err != nil {
		return models.Coordinates{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	if len(results) == 0 {
		return models.Coordinates{}, shop.ErrAddressNotFound
	}

	point, err := parseResult(results[0])
	if err != nil {
		return models.Coordinates{}, err
	}

	g.toCache(ctx, key, point)
	return point, nil
}

func (g *NominatimGeocoder) fromCache(ctx context.Context, key string) (models.Coordinates, bool) {
	if g.cache == nil {
		return models.Coordinates{}, false
	}

	hash, err := g.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, database.ErrCacheMiss) {
			g.log.Warn("Geocode cache read failed", logger.String("key", key), logger.Err(err))
		}
		return models.Coordinates{}, false
	}

	point, ok := utils.DecodeGeohash(hash)
	if !ok {
		g.log.Warn("Discarding corrupt geocode cache entry", logger.String("key", key))
		if err := g.cache.Delete(ctx, key); err != nil {
			g.log.Warn("Geocode cache eviction failed", logger.String("key", key), logger.Err(err))
		}
		return models.Coordinates{}, false
	}
	return point, true
}

func (g *NominatimGeocoder) toCache(ctx context.Context, key string, point models.Coordinates) {
	if g.cache == nil {
		return
	}

	hash := utils.EncodeCoordinates(point, constants.GeohashPrecision)
	if err := g.cache.Set(ctx, key, hash, g.cacheTTL); err != nil {
		g.log.Warn("Geocode cache write failed", logger.String("key", key), logger.Err(err))
	}
}

func parseResult(r searchResult) (models.Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude %q in geocoding result: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude %q in geocoding result: %w", r.Lon, err)
	}

	point := models.Coordinates{Latitude: lat, Longitude: lon}
	if !point.Valid() {
		return models.Coordinates{}, fmt.Errorf("geocoding result out of range: %v,%v", lat, lon)
	}
	return point, nil
}

type disabledGeocoder struct{}

func (disabledGeocoder) Geocode(context.Context, string) (models.Coordinates, error) {
	return models.Coordinates{}, shop.ErrNotImplemented
}
