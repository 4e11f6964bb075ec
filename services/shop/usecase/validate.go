package usecase

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/services/shop"
)

var jsonNull = []byte("null")

// validateInput checks every supplied field of input in the order name,
// address, latitude, longitude and returns the resulting patch. The first
// invalid field wins. With requireAll set, omitted fields are invalid too.
func validateInput(input models.ShopInput, requireAll bool) (models.ShopPatch, error) {
	var patch models.ShopPatch

	if input.Name != nil || requireAll {
		name, ok := parseText(input.Name)
		if !ok {
			return models.ShopPatch{}, &shop.ValidationError{Field: shop.FieldName}
		}
		patch.Name = &name
	}

	if input.Address != nil || requireAll {
		address, ok := parseText(input.Address)
		if !ok {
			return models.ShopPatch{}, &shop.ValidationError{Field: shop.FieldAddress}
		}
		patch.Address = &address
	}

	if input.Latitude != nil || requireAll {
		lat, ok := parseCoordinate(input.Latitude, 90)
		if !ok {
			return models.ShopPatch{}, &shop.ValidationError{Field: shop.FieldLatitude}
		}
		patch.Latitude = &lat
	}

	if input.Longitude != nil || requireAll {
		lng, ok := parseCoordinate(input.Longitude, 180)
		if !ok {
			return models.ShopPatch{}, &shop.ValidationError{Field: shop.FieldLongitude}
		}
		patch.Longitude = &lng
	}

	return patch, nil
}

// parseText accepts only a non-empty JSON string
func parseText(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}

// parseCoordinate accepts a JSON number or a string holding one, bounded by
// [-limit, limit]
func parseCoordinate(raw json.RawMessage, limit float64) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return 0, false
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		if v, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, false
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, false
	}
	return v, true
}
