package catalogRepo

import (
	"carcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Factory produces an empty value of one catalog entity kind, for decoding.
type Factory func() models.Entity

// CatalogRepository is the shared data-access contract for every catalog
// entity kind. One Mongo-backed implementation serves all seven kinds; the
// entity factory binds a repository instance to its kind.
type CatalogRepository interface {
	Create(entity models.Entity) error
	GetByID(id primitive.ObjectID) (models.Entity, error)
	UpdateSet(id primitive.ObjectID, set bson.M) (models.Entity, error)
	Delete(id primitive.ObjectID) error
	List() ([]models.Entity, error)
}
