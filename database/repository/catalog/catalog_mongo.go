package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/database"
	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	packageColl  *mongo.Collection
	activityColl *mongo.Collection
	carColl      *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &MongoCatalogRepo{
		packageColl:  db.Collection("tour_packages"),
		activityColl: db.Collection("activities"),
		carColl:      db.Collection("car_rentals"),
	}
}

func (repo *MongoCatalogRepo) collectionFor(itemType models.ItemType) (*mongo.Collection, error) {
	switch itemType {
	case models.ItemTypePackage:
		return repo.packageColl, nil
	case models.ItemTypeActivity:
		return repo.activityColl, nil
	case models.ItemTypeCar:
		return repo.carColl, nil
	default:
		return nil, models.ValidationError{Field: "itemType", Message: "unknown item type " + string(itemType)}
	}
}

// GetItem fetches one active catalog item by type and id.
func (repo *MongoCatalogRepo) GetItem(ctx context.Context, itemType models.ItemType, id string) (models.CatalogItem, error) {
	coll, err := repo.collectionFor(itemType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "active": true}
	res := coll.FindOne(ctx, filter)
	if res.Err() == mongo.ErrNoDocuments {
		return nil, models.NotFoundError{Resource: string(itemType), ID: id}
	}
	if res.Err() != nil {
		return nil, fmt.Errorf("error fetching %s %s: %w", itemType, id, res.Err())
	}

	return decodeItem(res, itemType)
}

// ListItems returns all active items of one type.
func (repo *MongoCatalogRepo) ListItems(ctx context.Context, itemType models.ItemType) ([]models.CatalogItem, error) {
	coll, err := repo.collectionFor(itemType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("error listing %s items: %w", itemType, err)
	}
	defer cur.Close(ctx)

	var out []models.CatalogItem
	for cur.Next(ctx) {
		item, err := decodeCurrent(cur, itemType)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s items: %w", itemType, err)
	}
	return out, nil
}

func decodeItem(res *mongo.SingleResult, itemType models.ItemType) (models.CatalogItem, error) {
	switch itemType {
	case models.ItemTypePackage:
		var item models.TourPackage
		if err := res.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding tour package: %w", err)
		}
		return &item, nil
	case models.ItemTypeActivity:
		var item models.Activity
		if err := res.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding activity: %w", err)
		}
		return &item, nil
	default:
		var item models.CarRental
		if err := res.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding car rental: %w", err)
		}
		return &item, nil
	}
}

func decodeCurrent(cur *mongo.Cursor, itemType models.ItemType) (models.CatalogItem, error) {
	switch itemType {
	case models.ItemTypePackage:
		var item models.TourPackage
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding tour package: %w", err)
		}
		return &item, nil
	case models.ItemTypeActivity:
		var item models.Activity
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding activity: %w", err)
		}
		return &item, nil
	default:
		var item models.CarRental
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding car rental: %w", err)
		}
		return &item, nil
	}
}
