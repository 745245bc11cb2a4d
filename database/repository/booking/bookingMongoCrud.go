package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// activeStatuses are the statuses that hold an item's date range.
var activeStatuses = bson.A{models.StatusPending, models.StatusConfirmed}

// CreateWithConflictCheck inserts the booking inside a Mongo session so the
// overlap query and the insert act as one atomic step per item. Two
// concurrent creates for the same item cannot both pass the overlap check
// against stale reads.
func (repo *MongoBookingRepo) CreateWithConflictCheck(ctx context.Context, b *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Date-less bookings (single-day activities) have no range to conflict on.
	if b.StartDate == nil || b.EndDate == nil {
		if _, err := repo.coll.InsertOne(ctx, b); err != nil {
			return fmt.Errorf("error creating booking: %w", err)
		}
		return nil
	}

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		// Exclusive ends: an existing booking conflicts only when
		// existing.start < new.end AND new.start < existing.end.
		filter := bson.M{
			"snapshot.item_id": b.Snapshot.ItemID,
			"status":           bson.M{"$in": activeStatuses},
			"start_date":       bson.M{"$lt": b.EndDate},
			"end_date":         bson.M{"$gt": b.StartDate},
		}
		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return nil, fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return nil, ErrDateConflict
		}
		if _, err := repo.coll.InsertOne(sc, b); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return err
	}
	return nil
}

// GetByBookingNumber retrieves a booking by its public booking number.
func (repo *MongoBookingRepo) GetByBookingNumber(ctx context.Context, bookingNumber string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"booking_number": bookingNumber}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFoundError{Resource: "booking", ID: bookingNumber}
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingNumber, err)
	}
	return &b, nil
}

// ListByGuest returns all bookings made by a guest, newest first.
func (repo *MongoBookingRepo) ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := optionsFindNewestFirst()
	cur, err := repo.coll.Find(ctx, bson.M{"guest_id": guestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for guest %s: %w", guestID, err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return out, nil
}

// UpdateGuarded persists the full booking document keyed on the expected
// current status. A zero match means a concurrent transition already moved
// the booking on, so a racing cancel and pay cannot both succeed.
func (repo *MongoBookingRepo) UpdateGuarded(ctx context.Context, b *models.Booking, expected models.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"booking_number": b.BookingNumber,
		"status":         expected,
	}
	res, err := repo.coll.ReplaceOne(ctx, filter, b)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", b.BookingNumber, err)
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}

// ListExpiredPending returns pending bookings whose hold expired before the
// cutoff.
func (repo *MongoBookingRepo) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":     models.StatusPending,
		"expires_at": bson.M{"$lt": cutoff},
	}
	cur, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing expired bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding expired bookings: %w", err)
	}
	return out, nil
}
