package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status values. A rejected request is deleted, never stored.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

// ServiceRef is a {slug, name} pair snapshotting a selected catalog service.
type ServiceRef struct {
	Slug string `bson:"slug" json:"slug"`
	Name string `bson:"name" json:"name"`
}

// Booking is a customer appointment request. Vehicle fields are denormalized
// free text captured at submission time, not live catalog references.
type Booking struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	CountryCode        string             `bson:"countryCode" json:"countryCode"`
	Phone              string             `bson:"phone" json:"phone"`
	Service            string             `bson:"service" json:"service"`
	ServiceName        string             `bson:"serviceName" json:"serviceName"`
	AdditionalServices []ServiceRef       `bson:"additionalServices" json:"additionalServices"`
	VehicleBrand       string             `bson:"vehicleBrand" json:"vehicleBrand"`
	VehicleModel       string             `bson:"vehicleModel" json:"vehicleModel"`
	BookingDate        string             `bson:"bookingDate" json:"bookingDate"`
	BookingTime        string             `bson:"bookingTime" json:"bookingTime"`
	Notes              string             `bson:"notes" json:"notes"`
	Status             string             `bson:"status" json:"status"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookingInput is the wire payload of a booking submission. Callers in
// single-service mode set Service/ServiceName; multi-select callers may send
// everything in AdditionalServices and leave Service empty.
type BookingInput struct {
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	CountryCode        string       `json:"countryCode"`
	Phone              string       `json:"phone"`
	Service            string       `json:"service"`
	ServiceName        string       `json:"serviceName"`
	AdditionalServices []ServiceRef `json:"additionalServices"`
	VehicleBrand       string       `json:"vehicleBrand"`
	VehicleModel       string       `json:"vehicleModel"`
	BookingDate        string       `json:"bookingDate"`
	BookingTime        string       `json:"bookingTime"`
	Notes              string       `json:"notes"`
}
