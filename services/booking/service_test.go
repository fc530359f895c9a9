package booking

import (
	"errors"
	"testing"
	"time"

	"carcare/models"
	"carcare/services/notification"
	"carcare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	if args.Error(0) == nil {
		booking.ID = primitive.NewObjectID()
		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(id primitive.ObjectID) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(id primitive.ObjectID, status string) (*models.Booking, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(id primitive.ObjectID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBookingRepository) GetAll() ([]models.Booking, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBookingReceived(booking *models.Booking) notification.Result {
	args := m.Called(booking)
	return args.Get(0).(notification.Result)
}

func (m *MockNotifier) NotifyBookingConfirmed(booking *models.Booking) notification.Result {
	args := m.Called(booking)
	return args.Get(0).(notification.Result)
}

func validInput() models.BookingInput {
	return models.BookingInput{
		Name:         "A",
		Email:        "a@x.com",
		Phone:        "9876543210",
		Service:      "wash",
		ServiceName:  "Car Wash",
		VehicleBrand: "Toyota",
		VehicleModel: "Fortuner",
		BookingDate:  "2025-01-10",
		BookingTime:  "09:00 AM",
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
	notifier.On("NotifyBookingReceived", mock.AnythingOfType("*models.Booking")).Return(notification.Result{Ok: true})

	created, err := svc.Create(validInput())

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, "wash", created.Service)
	assert.Empty(t, created.AdditionalServices)
	assert.NotNil(t, created.AdditionalServices)
	assert.Equal(t, utils.DefaultCountryCode, created.CountryCode)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreate_MissingFieldsAllReported(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	_, err := svc.Create(models.BookingInput{Email: "a@x.com", BookingDate: "2025-01-10"})

	var ve *utils.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"name", "phone", "service", "vehicleBrand", "vehicleModel", "bookingTime"}, ve.Fields)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreate_PhoneMustBeTenDigits(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	for _, phone := range []string{"987654321", "98765432101"} {
		input := validInput()
		input.Phone = phone
		_, err := svc.Create(input)

		var ve *utils.ValidationError
		assert.True(t, errors.As(err, &ve), "phone %q should be rejected", phone)
		assert.Contains(t, ve.Fields, "phone")
	}
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreate_PhoneStripsFormatting(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
	notifier.On("NotifyBookingReceived", mock.AnythingOfType("*models.Booking")).Return(notification.Result{Ok: true})

	input := validInput()
	input.Phone = "98765-43210"
	created, err := svc.Create(input)

	assert.NoError(t, err)
	assert.Equal(t, "9876543210", created.Phone)
}

func TestCreate_MultiSelectPromotesFirstService(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
	notifier.On("NotifyBookingReceived", mock.AnythingOfType("*models.Booking")).Return(notification.Result{Ok: true})

	input := validInput()
	input.Service = ""
	input.ServiceName = ""
	input.AdditionalServices = []models.ServiceRef{
		{Slug: "wash", Name: "Car Wash"},
		{Slug: "polish", Name: "Polish"},
		{Slug: "detailing", Name: "Detailing"},
	}
	created, err := svc.Create(input)

	assert.NoError(t, err)
	assert.Equal(t, "wash", created.Service)
	assert.Equal(t, "Car Wash", created.ServiceName)
	assert.Equal(t, []models.ServiceRef{
		{Slug: "polish", Name: "Polish"},
		{Slug: "detailing", Name: "Detailing"},
	}, created.AdditionalServices)
}

func TestCreate_NotificationFailureDoesNotFailCreate(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
	notifier.On("NotifyBookingReceived", mock.AnythingOfType("*models.Booking")).Return(notification.Result{Ok: false, Error: "smtp down"})

	created, err := svc.Create(validInput())

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, created.Status)
}

func TestAccept_ConfirmsAndReportsEmail(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	id := primitive.NewObjectID()
	pending := &models.Booking{ID: id, Email: "a@x.com", Status: models.BookingStatusPending}
	confirmed := &models.Booking{ID: id, Email: "a@x.com", Status: models.BookingStatusConfirmed}

	repo.On("GetByID", id).Return(pending, nil)
	repo.On("UpdateStatus", id, models.BookingStatusConfirmed).Return(confirmed, nil)
	notifier.On("NotifyBookingConfirmed", confirmed).Return(notification.Result{Ok: true})

	result, err := svc.Accept(id.Hex())

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, result.Booking.Status)
	assert.True(t, result.EmailSent)
	assert.Empty(t, result.EmailError)
}

func TestAccept_EmailFailureKeepsConfirmed(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	id := primitive.NewObjectID()
	pending := &models.Booking{ID: id, Status: models.BookingStatusPending}
	confirmed := &models.Booking{ID: id, Status: models.BookingStatusConfirmed}

	repo.On("GetByID", id).Return(pending, nil)
	repo.On("UpdateStatus", id, models.BookingStatusConfirmed).Return(confirmed, nil)
	notifier.On("NotifyBookingConfirmed", confirmed).Return(notification.Result{Ok: false, Error: "auth rejected"})

	result, err := svc.Accept(id.Hex())

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, result.Booking.Status)
	assert.False(t, result.EmailSent)
	assert.Equal(t, "auth rejected", result.EmailError)
}

func TestAccept_IdempotentNoSecondEmail(t *testing.T) {
	repo := &MockBookingRepository{}
	notifier := &MockNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	id := primitive.NewObjectID()
	confirmed := &models.Booking{ID: id, Status: models.BookingStatusConfirmed}
	repo.On("GetByID", id).Return(confirmed, nil)

	result, err := svc.Accept(id.Hex())

	assert.NoError(t, err)
	assert.True(t, result.AlreadyConfirmed)
	assert.Equal(t, models.BookingStatusConfirmed, result.Booking.Status)
	assert.False(t, result.EmailSent)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyBookingConfirmed", mock.Anything)
}

func TestAccept_InvalidIDRejectedBeforeStore(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := &DefaultBookingService{Repo: repo, Notifier: &MockNotifier{}}

	_, err := svc.Accept("not-a-valid-id")

	var ve *utils.ValidationError
	assert.True(t, errors.As(err, &ve))
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAccept_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := &DefaultBookingService{Repo: repo, Notifier: &MockNotifier{}}

	id := primitive.NewObjectID()
	repo.On("GetByID", id).Return(nil, &utils.NotFoundError{Resource: "Booking", ID: id.Hex()})

	_, err := svc.Accept(id.Hex())

	var nf *utils.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestDelete_NotFoundAndSuccess(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := &DefaultBookingService{Repo: repo, Notifier: &MockNotifier{}}

	missing := primitive.NewObjectID()
	repo.On("Delete", missing).Return(&utils.NotFoundError{Resource: "Booking", ID: missing.Hex()})

	err := svc.Delete(missing.Hex())
	var nf *utils.NotFoundError
	assert.True(t, errors.As(err, &nf))

	existing := primitive.NewObjectID()
	repo.On("Delete", existing).Return(nil)
	assert.NoError(t, svc.Delete(existing.Hex()))
}
