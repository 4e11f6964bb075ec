package shop

import (
	"context"

	"github.com/piresc/coffeeshop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/coffeeshop/services/shop GeocoderGW,EventGW

// GeocoderGW resolves a free-text address to coordinates
type GeocoderGW interface {
	Geocode(ctx context.Context, address string) (models.Coordinates, error)
}

// EventGW publishes registry mutations to interested consumers
type EventGW interface {
	PublishShopEvent(ctx context.Context, event models.ShopEvent) error
}
