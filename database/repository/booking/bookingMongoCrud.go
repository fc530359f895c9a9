package bookingRepo

import (
	"time"

	"carcare/models"
	"carcare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document and fills in the assigned ID.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return &utils.PersistenceError{Op: "create booking", Err: err}
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

// GetByID retrieves a booking by its ObjectID.
func (r *MongoBookingRepo) GetByID(id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "Booking", ID: id.Hex()}
		}
		return nil, &utils.PersistenceError{Op: "fetch booking", Err: err}
	}
	return &booking, nil
}

// UpdateStatus sets the booking status and returns the updated document.
func (r *MongoBookingRepo) UpdateStatus(id primitive.ObjectID, status string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "Booking", ID: id.Hex()}
		}
		return nil, &utils.PersistenceError{Op: "update booking status", Err: err}
	}
	return &booking, nil
}

// Delete removes a booking document regardless of its status.
func (r *MongoBookingRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &utils.PersistenceError{Op: "delete booking", Err: err}
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "Booking", ID: id.Hex()}
	}
	return nil
}

// GetAll retrieves every booking, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &utils.PersistenceError{Op: "list bookings", Err: err}
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, &utils.PersistenceError{Op: "decode booking", Err: err}
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
