package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "github.com/kanata-kan/explorekg-backend-sub001/database/repository/catalog"
	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

// DefaultCatalogService reads catalog items through a Redis look-aside
// cache. Cache failures degrade to repository reads, never to errors.
type DefaultCatalogService struct {
	Repo        catalogRepo.CatalogRepository
	CacheClient *redis.Client
	Logger      *zap.Logger
}

func cacheKey(itemType models.ItemType, id string) string {
	return utils.CatalogCachePrefix + string(itemType) + ":" + id
}

// GetItem returns one active catalog item, serving from cache when possible.
func (s *DefaultCatalogService) GetItem(ctx context.Context, itemType models.ItemType, id string) (models.CatalogItem, error) {
	key := cacheKey(itemType, id)

	if s.CacheClient != nil {
		if raw, err := s.CacheClient.Get(ctx, key).Result(); err == nil {
			if item, err := decodeCached(itemType, []byte(raw)); err == nil {
				return item, nil
			}
			// A cache entry that no longer decodes is stale; fall through.
			s.CacheClient.Del(ctx, key)
		}
	}

	item, err := s.Repo.GetItem(ctx, itemType, id)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if raw, err := json.Marshal(item); err == nil {
			if err := s.CacheClient.Set(ctx, key, raw, cacheTTL).Err(); err != nil && s.Logger != nil {
				s.Logger.Warn("failed to cache catalog item",
					zap.String("key", key), zap.Error(err))
			}
		}
	}

	return item, nil
}

// ListItems returns all active items of one type straight from the
// repository; listings change too often to be worth caching whole.
func (s *DefaultCatalogService) ListItems(ctx context.Context, itemType models.ItemType) ([]models.CatalogItem, error) {
	return s.Repo.ListItems(ctx, itemType)
}

func decodeCached(itemType models.ItemType, raw []byte) (models.CatalogItem, error) {
	switch itemType {
	case models.ItemTypePackage:
		var item models.TourPackage
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("stale cached tour package: %w", err)
		}
		return &item, nil
	case models.ItemTypeActivity:
		var item models.Activity
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("stale cached activity: %w", err)
		}
		return &item, nil
	case models.ItemTypeCar:
		var item models.CarRental
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("stale cached car rental: %w", err)
		}
		return &item, nil
	default:
		return nil, models.ValidationError{Field: "itemType", Message: "unknown item type " + string(itemType)}
	}
}
