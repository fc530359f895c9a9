package catalogRepo

import (
	"time"

	"carcare/models"
	"carcare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new entity document and fills in the assigned ID.
// Slug uniqueness is not enforced; two concurrent creates with names that
// normalize to the same slug will both succeed.
func (r *MongoCatalogRepo) Create(entity models.Entity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	meta := entity.Meta()
	now := time.Now()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, entity)
	if err != nil {
		return &utils.PersistenceError{Op: "create " + r.resource, Err: err}
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		meta.ID = oid
	}
	return nil
}

// GetByID retrieves one entity by its ObjectID.
func (r *MongoCatalogRepo) GetByID(id primitive.ObjectID) (models.Entity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entity := r.factory()
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: r.resource, ID: id.Hex()}
		}
		return nil, &utils.PersistenceError{Op: "fetch " + r.resource, Err: err}
	}
	return entity, nil
}

// UpdateSet merges the supplied fields over the existing document ($set) and
// returns the updated entity. Omitted fields keep their prior values.
func (r *MongoCatalogRepo) UpdateSet(id primitive.ObjectID, set bson.M) (models.Entity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	entity := r.factory()
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: r.resource, ID: id.Hex()}
		}
		return nil, &utils.PersistenceError{Op: "update " + r.resource, Err: err}
	}
	return entity, nil
}

// Delete removes the entity document only; referenced media assets stay on
// the external host until the caller removes them explicitly.
func (r *MongoCatalogRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &utils.PersistenceError{Op: "delete " + r.resource, Err: err}
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: r.resource, ID: id.Hex()}
	}
	return nil
}

// List retrieves every entity of this kind, sorted by order ascending.
func (r *MongoCatalogRepo) List() ([]models.Entity, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &utils.PersistenceError{Op: "list " + r.resource, Err: err}
	}
	defer cursor.Close(ctx)

	var entities []models.Entity
	for cursor.Next(ctx) {
		entity := r.factory()
		if err := cursor.Decode(entity); err != nil {
			return nil, &utils.PersistenceError{Op: "decode " + r.resource, Err: err}
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
