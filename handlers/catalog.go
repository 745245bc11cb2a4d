package handlers

import (
	"net/http"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/services/catalog"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/gin-gonic/gin"
)

func parseItemType(raw string) (models.ItemType, bool) {
	switch models.ItemType(raw) {
	case models.ItemTypePackage, models.ItemTypeActivity, models.ItemTypeCar:
		return models.ItemType(raw), true
	}
	return "", false
}

// ListCatalogItemsHandler lists the active items of one catalog type.
func ListCatalogItemsHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemType, ok := parseItemType(c.Param("itemType"))
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown item type", c.Param("itemType"))
			return
		}
		items, err := svc.ListItems(c.Request.Context(), itemType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
	}
}

// GetCatalogItemHandler fetches one active catalog item by id.
func GetCatalogItemHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemType, ok := parseItemType(c.Param("itemType"))
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown item type", c.Param("itemType"))
			return
		}
		item, err := svc.GetItem(c.Request.Context(), itemType, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
