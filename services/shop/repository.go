package shop

import (
	"github.com/piresc/coffeeshop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/coffeeshop/services/shop ShopRepo

// ShopRepo is the in-memory registry of shops
type ShopRepo interface {
	// NextID returns the id the next Create will assign
	NextID() int
	// Snapshot returns the shops together with the next id to be assigned
	Snapshot() models.Registry
	// Create stores shop under the next id and returns that id
	Create(shop models.Shop) int
	// Get returns the shop or ErrShopNotFound
	Get(id int) (models.Shop, error)
	// Update applies patch to the stored shop or returns ErrShopNotFound
	Update(id int, patch models.ShopPatch) (models.Shop, error)
	// Delete removes the shop or returns ErrShopNotFound
	Delete(id int) error
	// FindNearest returns the shop closest to point, or ErrEmptyRegistry
	FindNearest(point models.Coordinates) (models.Shop, float64, error)
}
