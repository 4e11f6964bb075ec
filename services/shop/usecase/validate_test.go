package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		in   json.RawMessage
		want string
		ok   bool
	}{
		{raw(`"Blue Bottle"`), "Blue Bottle", true},
		{raw(`""`), "", false},
		{raw(`null`), "", false},
		{raw(`12`), "", false},
		{raw(`[1,2,3]`), "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		got, ok := parseText(tt.in)
		assert.Equal(t, tt.ok, ok, string(tt.in))
		assert.Equal(t, tt.want, got, string(tt.in))
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in   json.RawMessage
		want float64
		ok   bool
	}{
		{raw(`37.79590475625579`), 37.79590475625579, true},
		{raw(`0`), 0, true},
		{raw(`"1"`), 1, true},
		{raw(`" -12.5 "`), -12.5, true},
		{raw(`-90`), -90, true},
		{raw(`90.5`), 0, false},
		{raw(`"i am wrong"`), 0, false},
		{raw(`""`), 0, false},
		{raw(`null`), 0, false},
		{raw(`"NaN"`), 0, false},
		{raw(`"Inf"`), 0, false},
		{raw(`true`), 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := parseCoordinate(tt.in, 90)
		assert.Equal(t, tt.ok, ok, string(tt.in))
		assert.Equal(t, tt.want, got, string(tt.in))
	}
}
