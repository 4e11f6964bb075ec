package models

import (
	"encoding/json"
	"strconv"
)

// Shop is a single coffee shop record
type Shop struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ShopInput carries shop fields exactly as the client sent them.
// A nil field was omitted; anything else, including null, was supplied.
type ShopInput struct {
	Name      json.RawMessage `json:"name"`
	Address   json.RawMessage `json:"address"`
	Latitude  json.RawMessage `json:"latitude"`
	Longitude json.RawMessage `json:"longitude"`
}

// IsEmpty reports whether no field was supplied
func (in ShopInput) IsEmpty() bool {
	return in.Name == nil && in.Address == nil && in.Latitude == nil && in.Longitude == nil
}

// ShopPatch is a validated partial update. Nil fields are left unchanged.
type ShopPatch struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// Apply overwrites the supplied fields of shop
func (p ShopPatch) Apply(shop *Shop) {
	if p.Name != nil {
		shop.Name = *p.Name
	}
	if p.Address != nil {
		shop.Address = *p.Address
	}
	if p.Latitude != nil {
		shop.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		shop.Longitude = *p.Longitude
	}
}

// Registry is a point-in-time copy of every stored shop plus the id counter
type Registry struct {
	NextID int
	Shops  []Shop
}

// MarshalJSON renders the registry as one object keyed by shop id with the
// counter under "nextID", matching the /all response shape
func (r Registry) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Shops)+1)
	out["nextID"] = r.NextID
	for _, shop := range r.Shops {
		out[strconv.Itoa(shop.ID)] = shop
	}
	return json.Marshal(out)
}
