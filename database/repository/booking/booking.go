package bookingRepo

import (
	"carcare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id primitive.ObjectID) (*models.Booking, error)
	UpdateStatus(id primitive.ObjectID, status string) (*models.Booking, error)
	Delete(id primitive.ObjectID) error
	GetAll() ([]models.Booking, error)
}
