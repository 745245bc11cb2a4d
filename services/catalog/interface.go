package catalog

import (
	"context"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// CatalogService is the catalog lookup contract the booking flow consumes:
// given an item type and id it returns enough data to build a snapshot, or a
// NotFoundError.
type CatalogService interface {
	GetItem(ctx context.Context, itemType models.ItemType, id string) (models.CatalogItem, error)
	ListItems(ctx context.Context, itemType models.ItemType) ([]models.CatalogItem, error)
}
