package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/internal/utils"
	"github.com/piresc/coffeeshop/services/shop"
)

// ShopUC implements the shop.ShopUC interface
type ShopUC struct {
	repo     shop.ShopRepo
	geocoder shop.GeocoderGW
	events   shop.EventGW
	log      *logger.ZapLogger
}

// NewShopUC creates the shop use case. A nil geocoder makes nearest lookups
// report ErrNotImplemented; a nil event gateway disables publishing.
func NewShopUC(repo shop.ShopRepo, geocoder shop.GeocoderGW, events shop.EventGW, log *logger.ZapLogger) shop.ShopUC {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &ShopUC{
		repo:     repo,
		geocoder: geocoder,
		events:   events,
		log:      log,
	}
}

// ListShops returns every shop with the current id counter
func (uc *ShopUC) ListShops() models.Registry {
	return uc.repo.Snapshot()
}

// CreateShop validates a complete shop and stores it under the next id
func (uc *ShopUC) CreateShop(input models.ShopInput) (int, error) {
	patch, err := validateInput(input, true)
	if err != nil {
		return 0, err
	}

	var item models.Shop
	patch.Apply(&item)
	id := uc.repo.Create(item)
	item.ID = id

	uc.publish(models.NewShopEvent(models.ShopCreated, id, &item))
	return id, nil
}

// GetShop returns the shop behind rawID
func (uc *ShopUC) GetShop(rawID string) (models.Shop, error) {
	id, ok := utils.ParsePositiveID(rawID)
	if !ok {
		return models.Shop{}, shop.ErrInvalidID
	}

	item, err := uc.repo.Get(id)
	if err != nil {
		return models.Shop{}, idError(err)
	}
	return item, nil
}

// UpdateShop overwrites the supplied fields of the shop behind rawID. Nothing
// is changed when any supplied field is invalid.
func (uc *ShopUC) UpdateShop(rawID string, input models.ShopInput) error {
	id, ok := utils.ParsePositiveID(rawID)
	if !ok {
		return shop.ErrInvalidID
	}
	if _, err := uc.repo.Get(id); err != nil {
		return idError(err)
	}

	patch, err := validateInput(input, false)
	if err != nil {
		return err
	}

	updated, err := uc.repo.Update(id, patch)
	if err != nil {
		return idError(err)
	}

	if !input.IsEmpty() {
		uc.publish(models.NewShopEvent(models.ShopUpdated, id, &updated))
	}
	return nil
}

// DeleteShop removes the shop behind rawID
func (uc *ShopUC) DeleteShop(rawID string) error {
	id, ok := utils.ParsePositiveID(rawID)
	if !ok {
		return shop.ErrInvalidID
	}

	if err := uc.repo.Delete(id); err != nil {
		return idError(err)
	}

	uc.publish(models.NewShopEvent(models.ShopDeleted, id, nil))
	return nil
}

// FindNearestShop geocodes address and returns the closest stored shop
func (uc *ShopUC) FindNearestShop(ctx context.Context, address string) (models.Shop, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Shop{}, &shop.ValidationError{Field: shop.FieldAddress}
	}
	if uc.geocoder == nil {
		return models.Shop{}, shop.ErrNotImplemented
	}

	point, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, shop.ErrNotImplemented) {
			return models.Shop{}, err
		}
		uc.log.WithRequestContext(ctx).Warn("Failed to geocode address",
			logger.String("address", address),
			logger.Err(err))
		return models.Shop{}, &shop.NearestError{Address: address, Err: err}
	}

	nearest, distance, err := uc.repo.FindNearest(point)
	if err != nil {
		return models.Shop{}, &shop.NearestError{Address: address, Err: err}
	}

	uc.log.WithRequestContext(ctx).Debug("Resolved nearest shop",
		logger.String("address", address),
		logger.Int("shop_id", nearest.ID),
		logger.Float64("distance_m", distance))
	return nearest, nil
}

func (uc *ShopUC) publish(event models.ShopEvent) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishShopEvent(context.Background(), event); err != nil {
		uc.log.Error("Failed to publish shop event",
			logger.String("type", string(event.Type)),
			logger.Int("shop_id", event.ShopID),
			logger.Err(err))
	}
}

// idError folds a missing shop into the public invalid id error
func idError(err error) error {
	if errors.Is(err, shop.ErrShopNotFound) {
		return shop.ErrInvalidID
	}
	return err
}
