package catalogRepo

import (
	"context"
	"time"

	"carcare/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository for one entity kind.
type MongoCatalogRepo struct {
	coll     *mongo.Collection
	resource string
	factory  Factory
}

// NewMongoCatalogRepo creates a CatalogRepository backed by the collection
// named by the factory's kind. resource is the display name used in errors.
func NewMongoCatalogRepo(resource string, factory Factory) CatalogRepository {
	return &MongoCatalogRepo{
		coll:     database.Collection(factory().Kind()),
		resource: resource,
		factory:  factory,
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
