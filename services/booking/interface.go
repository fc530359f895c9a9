package booking

import "carcare/models"

// AcceptResult carries the confirmed booking plus the outcome of the
// best-effort confirmation email. The transition is never rolled back on
// dispatch failure; EmailSent/EmailError are reporting only.
type AcceptResult struct {
	Booking          *models.Booking
	AlreadyConfirmed bool
	EmailSent        bool
	EmailError       string
}

// BookingService owns the booking state machine: intake validation, the
// pending-to-confirmed transition, deletion, and notification side effects.
type BookingService interface {
	Create(input models.BookingInput) (*models.Booking, error)
	Accept(id string) (*AcceptResult, error)
	Delete(id string) error
	List() ([]models.Booking, error)
}
