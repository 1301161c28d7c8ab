package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quickbites/app/models"
	"quickbites/app/repositories"
	"quickbites/config"
	"quickbites/pkg/cache"
	"quickbites/pkg/metrics"
)

// menuCacheKey holds the available-menu listing in Redis.
const menuCacheKey = "menu:available"

// MenuService serves the read-mostly catalogue.
type MenuService struct {
	menu *repositories.MenuRepository
}

func NewMenuService(menu *repositories.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// ListAvailable returns every available item. The listing is served from
// the Redis cache when warm; a cold or absent cache falls through to the
// store transparently.
func (s *MenuService) ListAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if cache.Get(menuCacheKey, &items) {
		metrics.CacheHits.WithLabelValues(menuCacheKey).Inc()
		return items, nil
	}
	metrics.CacheMisses.WithLabelValues(menuCacheKey).Inc()

	items, err := s.menu.Available()
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}

	_ = cache.Set(menuCacheKey, items, config.MenuCacheTTL())
	return items, nil
}

// GetByID returns a single item regardless of its availability flag, so
// unavailable items stay individually fetchable.
func (s *MenuService) GetByID(id uint) (models.MenuItem, error) {
	item, err := s.menu.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, fmt.Errorf("%w: menu item %d", models.ErrNotFound, id)
		}
		return models.MenuItem{}, fmt.Errorf("find menu item: %w", err)
	}
	return item, nil
}
