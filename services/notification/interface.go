package notification

import "carcare/models"

// Result is the outcome of one delivery attempt. Dispatch never raises to the
// caller; transport failures fold into Error with no retry.
type Result struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NotificationService sends transactional booking messages. Each call makes
// at most one delivery attempt per recipient and never blocks or reverses a
// booking state change.
type NotificationService interface {
	NotifyBookingReceived(booking *models.Booking) Result
	NotifyBookingConfirmed(booking *models.Booking) Result
}
