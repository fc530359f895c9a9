package notification

import (
	"testing"

	"carcare/models"

	"github.com/stretchr/testify/assert"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		Name:         "A",
		Email:        "a@x.com",
		CountryCode:  "+91",
		Phone:        "9876543210",
		ServiceName:  "Car Wash",
		VehicleBrand: "Toyota",
		VehicleModel: "Fortuner",
		BookingDate:  "2025-01-10",
		BookingTime:  "09:00 AM",
		AdditionalServices: []models.ServiceRef{
			{Slug: "polish", Name: "Polish"},
		},
	}
}

func TestNotifyBookingReceived_UnconfiguredTransportReportsBothFailures(t *testing.T) {
	svc := &MailNotificationService{AdminEmail: "staff@x.com"}

	result := svc.NotifyBookingReceived(sampleBooking())

	assert.False(t, result.Ok)
	assert.Contains(t, result.Error, "customer: mail transport not configured")
	assert.Contains(t, result.Error, "admin: mail transport not configured")
}

func TestNotifyBookingReceived_NoAdminAddressSkipsAlert(t *testing.T) {
	svc := &MailNotificationService{}

	result := svc.NotifyBookingReceived(sampleBooking())

	assert.False(t, result.Ok)
	assert.NotContains(t, result.Error, "admin:")
}

func TestNotifyBookingConfirmed_UnconfiguredTransport(t *testing.T) {
	svc := &MailNotificationService{}

	result := svc.NotifyBookingConfirmed(sampleBooking())

	assert.False(t, result.Ok)
	assert.Contains(t, result.Error, "mail transport not configured")
}

func TestRenderTemplates(t *testing.T) {
	b := sampleBooking()

	body, err := renderTemplate(receivedCustomerTmpl, b)
	assert.NoError(t, err)
	assert.Contains(t, body, "Thank you, A!")
	assert.Contains(t, body, "Car Wash")
	assert.Contains(t, body, "Polish")

	body, err = renderTemplate(receivedAdminTmpl, b)
	assert.NoError(t, err)
	assert.Contains(t, body, "a@x.com")
	assert.Contains(t, body, "+91 9876543210")

	body, err = renderTemplate(confirmedTmpl, b)
	assert.NoError(t, err)
	assert.Contains(t, body, "confirmed")
	assert.Contains(t, body, "2025-01-10")
}
