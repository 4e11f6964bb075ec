package shop

import (
	"context"

	"github.com/piresc/coffeeshop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/coffeeshop/services/shop ShopUC

// ShopUC defines the shop business operations behind the HTTP surface
type ShopUC interface {
	ListShops() models.Registry
	CreateShop(input models.ShopInput) (int, error)
	GetShop(rawID string) (models.Shop, error)
	UpdateShop(rawID string, input models.ShopInput) error
	DeleteShop(rawID string) error
	FindNearestShop(ctx context.Context, address string) (models.Shop, error)
}
