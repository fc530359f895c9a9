package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaAsset points at a file held by the external media host. The catalog
// record owns the reference, not the asset: URL and AssetID are always set
// together, and deleting the record does not reclaim the remote file.
type MediaAsset struct {
	URL     string `bson:"url" json:"url"`
	AssetID string `bson:"assetId" json:"assetId"`
}

// EntityMeta is the shared shape of every catalog entity kind.
type EntityMeta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Entity is implemented by the closed set of catalog entity kinds. Kind names
// double as Mongo collection names. Missing lists the required fields absent
// from the value, for create-time validation. MediaSlots exposes the kind's
// named media slots so shared code can enforce url/assetId pairing.
type Entity interface {
	Meta() *EntityMeta
	Kind() string
	Missing() []string
	MediaSlots() map[string]*MediaAsset
}

// Service is a bookable catalog service shown on the booking form.
type Service struct {
	EntityMeta  `bson:",inline"`
	Description string      `bson:"description" json:"description"`
	Features    string      `bson:"features" json:"features"`
	Image       *MediaAsset `bson:"image,omitempty" json:"image,omitempty"`
}

func (s *Service) Meta() *EntityMeta { return &s.EntityMeta }
func (s *Service) Kind() string      { return "services" }

func (s *Service) Missing() []string {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Image == nil {
		missing = append(missing, "image")
	}
	return missing
}

func (s *Service) MediaSlots() map[string]*MediaAsset {
	return map[string]*MediaAsset{"image": s.Image}
}

// DetailedService is a service with a long-form content page.
type DetailedService struct {
	EntityMeta   `bson:",inline"`
	Tagline      string      `bson:"tagline" json:"tagline"`
	Description  string      `bson:"description" json:"description"`
	Content      string      `bson:"content" json:"content"`
	Features     string      `bson:"features" json:"features"`
	Image        *MediaAsset `bson:"image,omitempty" json:"image,omitempty"`
	ContentImage *MediaAsset `bson:"contentImage,omitempty" json:"contentImage,omitempty"`
}

func (d *DetailedService) Meta() *EntityMeta { return &d.EntityMeta }
func (d *DetailedService) Kind() string      { return "detailed-services" }

func (d *DetailedService) Missing() []string {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Image == nil {
		missing = append(missing, "image")
	}
	return missing
}

func (d *DetailedService) MediaSlots() map[string]*MediaAsset {
	return map[string]*MediaAsset{"image": d.Image, "contentImage": d.ContentImage}
}

// SpecialService is a promotional offering with hero and content imagery.
type SpecialService struct {
	EntityMeta   `bson:",inline"`
	Tagline      string      `bson:"tagline" json:"tagline"`
	Description  string      `bson:"description" json:"description"`
	Content      string      `bson:"content" json:"content"`
	HeroImage    *MediaAsset `bson:"heroImage,omitempty" json:"heroImage,omitempty"`
	ContentImage *MediaAsset `bson:"contentImage,omitempty" json:"contentImage,omitempty"`
}

func (s *SpecialService) Meta() *EntityMeta { return &s.EntityMeta }
func (s *SpecialService) Kind() string      { return "special-services" }

func (s *SpecialService) Missing() []string {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Tagline == "" {
		missing = append(missing, "tagline")
	}
	if s.Description == "" {
		missing = append(missing, "description")
	}
	if s.Content == "" {
		missing = append(missing, "content")
	}
	if s.HeroImage == nil {
		missing = append(missing, "heroImage")
	}
	if s.ContentImage == nil {
		missing = append(missing, "contentImage")
	}
	return missing
}

func (s *SpecialService) MediaSlots() map[string]*MediaAsset {
	return map[string]*MediaAsset{"heroImage": s.HeroImage, "contentImage": s.ContentImage}
}

// SpecialServiceVariant is a sub-offering of a special service, keyed to its
// parent by slug.
type SpecialServiceVariant struct {
	EntityMeta     `bson:",inline"`
	SpecialService string      `bson:"specialService" json:"specialService"`
	Tagline        string      `bson:"tagline" json:"tagline"`
	Description    string      `bson:"description" json:"description"`
	Content        string      `bson:"content" json:"content"`
	Image          *MediaAsset `bson:"image,omitempty" json:"image,omitempty"`
}

func (v *SpecialServiceVariant) Meta() *EntityMeta { return &v.EntityMeta }
func (v *SpecialServiceVariant) Kind() string      { return "special-service-variants" }

func (v *SpecialServiceVariant) Missing() []string {
	var missing []string
	if v.Name == "" {
		missing = append(missing, "name")
	}
	if v.SpecialService == "" {
		missing = append(missing, "specialService")
	}
	return missing
}

func (v *SpecialServiceVariant) MediaSlots() map[string]*MediaAsset {
	return map[string]*MediaAsset{"image": v.Image}
}

// VehicleBrand is a brand offered on the booking form, with its model names.
// It carries no media.
type VehicleBrand struct {
	EntityMeta `bson:",inline"`
	Models     []string `bson:"models" json:"models"`
}

func (b *VehicleBrand) Meta() *EntityMeta { return &b.EntityMeta }
func (b *VehicleBrand) Kind() string      { return "vehicle-brands" }

func (b *VehicleBrand) Missing() []string {
	if b.Name == "" {
		return []string{"name"}
	}
	return nil
}

func (b *VehicleBrand) MediaSlots() map[string]*MediaAsset { return nil }

// CarBrand is a showcased manufacturer with a hosted logo.
type CarBrand struct {
	EntityMeta `bson:",inline"`
	Logo       *MediaAsset `bson:"logo,omitempty" json:"logo,omitempty"`
}

func (b *CarBrand) Meta() *EntityMeta { return &b.EntityMeta }
func (b *CarBrand) Kind() string      { return "car-brands" }

func (b *CarBrand) Missing() []string {
	var missing []string
	if b.Name == "" {
		missing = append(missing, "name")
	}
	if b.Logo == nil {
		missing = append(missing, "logo")
	}
	return missing
}

func (b *CarBrand) MediaSlots() map[string]*MediaAsset {
	return map[string]*MediaAsset{"logo": b.Logo}
}

// CarModel is a showcased model belonging to a CarBrand.
type CarModel struct {
	EntityMeta   `bson:",inline"`
	Brand        string      `bson:"brand" json:"brand"`
	ServiceCount int         `bson:"serviceCount" json:"serviceCount"`
	Image        *MediaAsset `bson:"image,omitempty" json:"image,omitempty"`
}

func (m *CarModel) Meta() *EntityMeta { return &m.EntityMeta }
func (m *CarModel) Kind() string      { return "car-models" }

func (m *CarModel) Missing() []string {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Brand == "" {
		missing = append(missing, "brand")
	}
	if m.Image == nil {
		missing = append(missing, "image")
	}
	return missing
}

func (m *CarModel) MediaSlots() map[string]*MediaAsset {
	return map[string]*MediaAsset{"image": m.Image}
}
