package catalog

import (
	catalogRepo "carcare/database/repository/catalog"
	"carcare/models"
	"carcare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCatalogService is the production implementation of CatalogService
// for one entity kind. The factory binds it to that kind's media slots.
type DefaultCatalogService struct {
	Repo    catalogRepo.CatalogRepository
	Factory catalogRepo.Factory
}

// parseID validates the 24-hex identifier shape before any store access.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &utils.ValidationError{Message: "Invalid ID format"}
	}
	return oid, nil
}

// Create validates the entity, derives its slug from the name when absent
// and persists it. Slug uniqueness is deliberately not checked before
// insert; duplicate names yield duplicate slugs, as the catalog has always
// behaved.
func (s *DefaultCatalogService) Create(entity models.Entity) (models.Entity, error) {
	fields := entity.Missing()
	for slot, asset := range entity.MediaSlots() {
		if asset != nil && (asset.URL == "" || asset.AssetID == "") {
			fields = append(fields, slot)
		}
	}
	if len(fields) > 0 {
		return nil, &utils.ValidationError{Fields: fields}
	}

	meta := entity.Meta()
	if meta.Slug == "" {
		meta.Slug = utils.Slugify(meta.Name)
	}

	if err := s.Repo.Create(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update merges the supplied fields over the existing record. Omitted fields
// keep their prior values, so an edit without a new upload leaves the stored
// media slot untouched. The slug is regenerated only when the name changes
// and no slug was supplied explicitly.
func (s *DefaultCatalogService) Update(id string, fields bson.M) (models.Entity, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	delete(fields, "_id")
	delete(fields, "createdAt")

	if name, ok := fields["name"].(string); ok && name != "" {
		if _, supplied := fields["slug"]; !supplied {
			fields["slug"] = utils.Slugify(name)
		}
	}

	var invalid []string
	for slot := range s.Factory().MediaSlots() {
		raw, present := fields[slot]
		if !present || raw == nil {
			continue
		}
		asset, ok := raw.(map[string]interface{})
		if !ok {
			invalid = append(invalid, slot)
			continue
		}
		url, _ := asset["url"].(string)
		assetID, _ := asset["assetId"].(string)
		if url == "" || assetID == "" {
			invalid = append(invalid, slot)
		}
	}
	if len(invalid) > 0 {
		return nil, &utils.ValidationError{Fields: invalid}
	}

	return s.Repo.UpdateSet(oid, fields)
}

// Delete removes the record only. Referenced media assets are not cascaded;
// reclaiming them is a separate, caller-initiated MediaService.Remove call.
func (s *DefaultCatalogService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

// List returns every entity of this kind ordered by its sort key.
func (s *DefaultCatalogService) List() ([]models.Entity, error) {
	return s.Repo.List()
}
