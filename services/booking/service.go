package booking

import (
	"strings"

	bookingRepo "carcare/database/repository/booking"
	"carcare/models"
	"carcare/services/notification"
	"carcare/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
}

// stripNonDigits drops everything but 0-9 from a phone input.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseID validates the 24-hex identifier shape before any store access.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &utils.ValidationError{Message: "Invalid booking ID format"}
	}
	return oid, nil
}

// Create validates the request, stores it as pending and fires the received
// notification. A notification failure is logged and swallowed; the booking
// is still reported as created.
func (s *DefaultBookingService) Create(input models.BookingInput) (*models.Booking, error) {
	// Multi-select submissions may arrive with no primary service; the first
	// selected entry is promoted and the remainder stay additional. Single
	// selections pass through untouched. Downstream storage and display rely
	// on this shape, so it is kept as-is.
	if input.Service == "" && len(input.AdditionalServices) > 0 {
		first := input.AdditionalServices[0]
		input.Service = first.Slug
		input.ServiceName = first.Name
		input.AdditionalServices = input.AdditionalServices[1:]
	}

	phone := stripNonDigits(input.Phone)

	var fields []string
	if input.Name == "" {
		fields = append(fields, "name")
	}
	if input.Email == "" {
		fields = append(fields, "email")
	}
	if len(phone) != 10 {
		fields = append(fields, "phone")
	}
	if input.Service == "" {
		fields = append(fields, "service")
	}
	if input.VehicleBrand == "" {
		fields = append(fields, "vehicleBrand")
	}
	if input.VehicleModel == "" {
		fields = append(fields, "vehicleModel")
	}
	if input.BookingDate == "" {
		fields = append(fields, "bookingDate")
	}
	if input.BookingTime == "" || !utils.IsValidTimeSlot(input.BookingTime) {
		fields = append(fields, "bookingTime")
	}
	if len(fields) > 0 {
		return nil, &utils.ValidationError{Fields: fields}
	}

	countryCode := input.CountryCode
	if countryCode == "" {
		countryCode = utils.DefaultCountryCode
	}
	additional := input.AdditionalServices
	if additional == nil {
		additional = []models.ServiceRef{}
	}

	booking := &models.Booking{
		Name:               input.Name,
		Email:              input.Email,
		CountryCode:        countryCode,
		Phone:              phone,
		Service:            input.Service,
		ServiceName:        input.ServiceName,
		AdditionalServices: additional,
		VehicleBrand:       input.VehicleBrand,
		VehicleModel:       input.VehicleModel,
		BookingDate:        input.BookingDate,
		BookingTime:        input.BookingTime,
		Notes:              input.Notes,
		Status:             models.BookingStatusPending,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	if res := s.Notifier.NotifyBookingReceived(booking); !res.Ok {
		utils.GetLogger().Warn("booking received notification failed",
			zap.String("bookingId", booking.ID.Hex()), zap.String("error", res.Error))
	}
	return booking, nil
}

// Accept transitions a pending booking to confirmed and attempts the
// confirmation email. Accepting an already-confirmed booking is idempotent:
// the record is returned unchanged and no second email goes out.
func (s *DefaultBookingService) Accept(id string) (*AcceptResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(oid)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.BookingStatusConfirmed {
		return &AcceptResult{Booking: existing, AlreadyConfirmed: true}, nil
	}

	updated, err := s.Repo.UpdateStatus(oid, models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	result := &AcceptResult{Booking: updated}
	if res := s.Notifier.NotifyBookingConfirmed(updated); res.Ok {
		result.EmailSent = true
	} else {
		result.EmailError = res.Error
		utils.GetLogger().Warn("booking confirmation email failed",
			zap.String("bookingId", updated.ID.Hex()), zap.String("error", res.Error))
	}
	return result, nil
}

// Delete removes a booking regardless of status. Rejection is modeled only
// as deletion; there is no rejected state.
func (s *DefaultBookingService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

// List returns every booking, newest first.
func (s *DefaultBookingService) List() ([]models.Booking, error) {
	return s.Repo.GetAll()
}
