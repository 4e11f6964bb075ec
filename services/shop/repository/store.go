package repository

import (
	"sort"
	"sync"

	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/internal/utils"
	"github.com/piresc/coffeeshop/services/shop"
)

// Store is the process-local shop registry
type Store struct {
	mu     sync.RWMutex
	shops  map[int]models.Shop
	nextID int
}

// NewStore creates an empty registry whose first id is 1
func NewStore() *Store {
	return &Store{
		shops:  make(map[int]models.Shop),
		nextID: 1,
	}
}

var _ shop.ShopRepo = (*Store)(nil)

// Put inserts a shop under its own id, raising the counter past it when
// needed. Used while loading the startup source.
func (s *Store) Put(item models.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shops[item.ID] = item
	if item.ID >= s.nextID {
		s.nextID = item.ID + 1
	}
}

// NextID returns the id the next Create will assign
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID
}

// Snapshot returns a consistent copy of the shops and the counter
func (s *Store) Snapshot() models.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Registry{
		NextID: s.nextID,
		Shops:  s.sortedLocked(),
	}
}

// Create stores item under the next id and returns it
func (s *Store) Create(item models.Shop) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	item.ID = id
	s.shops[id] = item
	s.nextID++

	return id
}

// Get returns the shop with the given id
func (s *Store) Get(id int) (models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.shops[id]
	if !ok {
		return models.Shop{}, shop.ErrShopNotFound
	}
	return item, nil
}

// Update applies patch to the stored shop in a single critical section
func (s *Store) Update(id int, patch models.ShopPatch) (models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.shops[id]
	if !ok {
		return models.Shop{}, shop.ErrShopNotFound
	}
	patch.Apply(&item)
	s.shops[id] = item

	return item, nil
}

// Delete removes the shop. The counter is left untouched.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shops[id]; !ok {
		return shop.ErrShopNotFound
	}
	delete(s.shops, id)

	return nil
}

// FindNearest scans every shop and returns the closest one to point along
// with its distance in meters. Equal distances resolve to the lowest id.
func (s *Store) FindNearest(point models.Coordinates) (models.Shop, float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.shops) == 0 {
		return models.Shop{}, 0, shop.ErrEmptyRegistry
	}

	var (
		nearest models.Shop
		best    float64
		found   bool
	)
	for _, item := range s.sortedLocked() {
		d := utils.HaversineDistance(point, models.Coordinates{
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
		})
		if !found || d < best {
			nearest, best, found = item, d, true
		}
	}

	return nearest, best, nil
}

func (s *Store) sortedLocked() []models.Shop {
	out := make([]models.Shop, 0, len(s.shops))
	for _, item := range s.shops {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
