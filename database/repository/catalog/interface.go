package catalogRepo

import (
	"context"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// CatalogRepository exposes read access to the bookable catalog. Each item
// type lives in its own collection; GetItem dispatches on the type tag.
type CatalogRepository interface {
	GetItem(ctx context.Context, itemType models.ItemType, id string) (models.CatalogItem, error)
	ListItems(ctx context.Context, itemType models.ItemType) ([]models.CatalogItem, error)
	EnsureIndexes() error
}
