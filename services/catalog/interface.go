package catalog

import (
	"carcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService is the lifecycle contract shared by all catalog entity
// kinds: slug derivation, create-time validation, partial update with media
// retention, deletion and ordered listing.
type CatalogService interface {
	Create(entity models.Entity) (models.Entity, error)
	Update(id string, fields bson.M) (models.Entity, error)
	Delete(id string) error
	List() ([]models.Entity, error)
}
