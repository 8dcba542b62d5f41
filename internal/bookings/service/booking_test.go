package service

import (
	"context"
	"io"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "drportal/internal/bookings/errors"
	"drportal/internal/bookings/validator"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/logger"
	"drportal/pkg/model"

	mongotx "drportal/pkg/db/mongo"
)

type mockBookingRepository struct {
	createFunc        func(ctx context.Context, booking *model.Booking) error
	findByIDFunc      func(ctx context.Context, id string) (*model.Booking, error)
	findByDateFunc    func(ctx context.Context, date string) ([]*model.Booking, error)
	findByPatientFunc func(ctx context.Context, patientEmail string) ([]*model.Booking, error)
	findByKeyFunc     func(ctx context.Context, treatment, date, patient string) (*model.Booking, error)
	setPaidFunc       func(ctx context.Context, id string, transactionID string) (*model.UpdateResult, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return m.createFunc(ctx, booking)
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockBookingRepository) FindByDate(ctx context.Context, date string) ([]*model.Booking, error) {
	return m.findByDateFunc(ctx, date)
}

func (m *mockBookingRepository) FindByPatient(ctx context.Context, patientEmail string) ([]*model.Booking, error) {
	return m.findByPatientFunc(ctx, patientEmail)
}

func (m *mockBookingRepository) FindByKey(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
	return m.findByKeyFunc(ctx, treatment, date, patient)
}

func (m *mockBookingRepository) SetPaid(ctx context.Context, id string, transactionID string) (*model.UpdateResult, error) {
	return m.setPaidFunc(ctx, id, transactionID)
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	var sessCtx mongo.SessionContext
	return fn(sessCtx)
}

type mockPaymentRecorder struct {
	createFunc func(ctx context.Context, payment *model.Payment) error
}

func (m *mockPaymentRecorder) Create(ctx context.Context, payment *model.Payment) error {
	return m.createFunc(ctx, payment)
}

type mockPublisher struct {
	confirmed []*model.Booking
	paid      []*model.Booking
}

func (m *mockPublisher) AppointmentConfirmed(ctx context.Context, booking *model.Booking) error {
	m.confirmed = append(m.confirmed, booking)
	return nil
}

func (m *mockPublisher) PaymentReceived(ctx context.Context, booking *model.Booking) error {
	m.paid = append(m.paid, booking)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Output: io.Discard, Service: "test"}),
	}
}

func validBooking() *model.Booking {
	return &model.Booking{
		Treatment:    "Teeth Cleaning",
		Date:         "May 16, 2026",
		Slot:         "9:00 AM",
		Patient:      "Jane Doe",
		PatientEmail: "jane@example.com",
	}
}

func newTestService(repo *mockBookingRepository, payments *mockPaymentRecorder, publisher *mockPublisher) BookingService {
	cfg := testConfig()
	return NewBookingService(repo, payments, publisher, validator.NewBookingValidator(cfg.Log), cfg)
}

func TestCreateNewBooking(t *testing.T) {
	repo := &mockBookingRepository{
		findByKeyFunc: func(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
			return nil, bookingserrors.ErrNotFound
		},
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			booking.ID = "abc123"
			return nil
		},
	}
	publisher := &mockPublisher{}
	svc := newTestService(repo, nil, publisher)

	created, isNew, err := svc.Create(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !isNew {
		t.Error("Create() isNew = false, want true")
	}
	if created.ID != "abc123" {
		t.Errorf("Create() id = %q, want %q", created.ID, "abc123")
	}
	if created.Paid {
		t.Error("new booking must not be marked paid")
	}
	if len(publisher.confirmed) != 1 {
		t.Errorf("confirmation events = %d, want 1", len(publisher.confirmed))
	}
}

func TestCreateDuplicateReturnsExisting(t *testing.T) {
	existing := validBooking()
	existing.ID = "existing1"

	createCalled := false
	repo := &mockBookingRepository{
		findByKeyFunc: func(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
			return existing, nil
		},
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			createCalled = true
			return nil
		},
	}
	publisher := &mockPublisher{}
	svc := newTestService(repo, nil, publisher)

	got, isNew, err := svc.Create(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if isNew {
		t.Error("Create() isNew = true, want false")
	}
	if got.ID != "existing1" {
		t.Errorf("Create() returned %q, want the existing booking", got.ID)
	}
	if createCalled {
		t.Error("Create() inserted despite an existing booking")
	}
	if len(publisher.confirmed) != 0 {
		t.Error("duplicate booking must not publish a confirmation")
	}
}

func TestCreateLosingRaceReturnsWinner(t *testing.T) {
	winner := validBooking()
	winner.ID = "winner1"

	firstLookup := true
	repo := &mockBookingRepository{
		findByKeyFunc: func(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
			// pre-check misses; re-read after the duplicate key hit finds the winner
			if firstLookup {
				firstLookup = false
				return nil, bookingserrors.ErrNotFound
			}
			return winner, nil
		},
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return bookingserrors.ErrDuplicate
		},
	}
	svc := newTestService(repo, nil, &mockPublisher{})

	got, isNew, err := svc.Create(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if isNew {
		t.Error("Create() isNew = true, want false")
	}
	if got.ID != "winner1" {
		t.Errorf("Create() returned %q, want the winner's booking", got.ID)
	}
}

func TestCreateRejectsInvalidBooking(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil, &mockPublisher{})

	booking := validBooking()
	booking.PatientEmail = "not-an-email"

	_, _, err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("Create() accepted an invalid booking")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusUnprocessableEntity {
		t.Errorf("Create() error = %v, want a validation error", err)
	}
}

func TestGetByPatientSelfOnly(t *testing.T) {
	repo := &mockBookingRepository{
		findByPatientFunc: func(ctx context.Context, patientEmail string) ([]*model.Booking, error) {
			return []*model.Booking{validBooking()}, nil
		},
	}
	svc := newTestService(repo, nil, &mockPublisher{})

	_, err := svc.GetByPatient(context.Background(), "mallory@example.com", "jane@example.com")
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusForbidden {
		t.Fatalf("GetByPatient() error = %v, want forbidden", err)
	}

	bookings, err := svc.GetByPatient(context.Background(), "jane@example.com", "jane@example.com")
	if err != nil {
		t.Fatalf("GetByPatient() error = %v", err)
	}
	if len(bookings) != 1 {
		t.Errorf("GetByPatient() returned %d bookings, want 1", len(bookings))
	}
}

func TestConfirmPaymentMissingBookingWritesNothing(t *testing.T) {
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, bookingserrors.ErrNotFound
		},
	}
	paymentWritten := false
	payments := &mockPaymentRecorder{
		createFunc: func(ctx context.Context, payment *model.Payment) error {
			paymentWritten = true
			return nil
		},
	}
	svc := newTestService(repo, payments, &mockPublisher{})

	_, err := svc.ConfirmPayment(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaa", &model.Payment{TransactionID: "tx_1", Amount: 80})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusNotFound {
		t.Fatalf("ConfirmPayment() error = %v, want not found", err)
	}
	if paymentWritten {
		t.Error("payment was recorded for a missing booking")
	}
}

func TestConfirmPaymentRecordsThenMarksPaid(t *testing.T) {
	booking := validBooking()
	booking.ID = "abc123"

	var order []string
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return booking, nil
		},
		setPaidFunc: func(ctx context.Context, id string, transactionID string) (*model.UpdateResult, error) {
			order = append(order, "setPaid")
			if transactionID != "tx_1" {
				t.Errorf("SetPaid transactionID = %q, want %q", transactionID, "tx_1")
			}
			return &model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	payments := &mockPaymentRecorder{
		createFunc: func(ctx context.Context, payment *model.Payment) error {
			order = append(order, "payment")
			if payment.BookingID != "abc123" {
				t.Errorf("payment bookingId = %q, want %q", payment.BookingID, "abc123")
			}
			return nil
		},
	}
	publisher := &mockPublisher{}
	svc := newTestService(repo, payments, publisher)

	result, err := svc.ConfirmPayment(context.Background(), "abc123", &model.Payment{TransactionID: "tx_1", Amount: 80})
	if err != nil {
		t.Fatalf("ConfirmPayment() error = %v", err)
	}
	if result.ModifiedCount != 1 {
		t.Errorf("ModifiedCount = %d, want 1", result.ModifiedCount)
	}
	if len(order) != 2 || order[0] != "payment" || order[1] != "setPaid" {
		t.Errorf("operation order = %v, want payment before setPaid", order)
	}
	if len(publisher.paid) != 1 {
		t.Errorf("payment events = %d, want 1", len(publisher.paid))
	}
}

func TestConfirmPaymentRequiresTransactionID(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil, &mockPublisher{})

	_, err := svc.ConfirmPayment(context.Background(), "abc123", &model.Payment{})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("ConfirmPayment() error = %v, want invalid input", err)
	}
}

func TestConfirmPaymentRequiresAmount(t *testing.T) {
	paymentWritten := false
	payments := &mockPaymentRecorder{
		createFunc: func(ctx context.Context, payment *model.Payment) error {
			paymentWritten = true
			return nil
		},
	}
	svc := newTestService(&mockBookingRepository{}, payments, &mockPublisher{})

	_, err := svc.ConfirmPayment(context.Background(), "abc123", &model.Payment{TransactionID: "tx_1"})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("ConfirmPayment() error = %v, want invalid input", err)
	}
	if paymentWritten {
		t.Error("payment was recorded without an amount")
	}
}
