package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "drportal/internal/bookings/errors"
	"drportal/internal/bookings/repository"
	"drportal/internal/bookings/validator"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/model"
	"drportal/pkg/sanitizer"
)

// EventPublisher fans booking events out to the notification pipeline.
// Publishing is best effort; a broker outage never fails the request.
type EventPublisher interface {
	AppointmentConfirmed(ctx context.Context, booking *model.Booking) error
	PaymentReceived(ctx context.Context, booking *model.Booking) error
}

// PaymentRecorder persists payment records. Implemented by the payments
// repository so the confirm flow can write both collections in one
// transaction.
type PaymentRecorder interface {
	Create(ctx context.Context, payment *model.Payment) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, bool, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByPatient(ctx context.Context, requesterEmail, patientEmail string) ([]*model.Booking, error)
	ConfirmPayment(ctx context.Context, id string, payment *model.Payment) (*model.UpdateResult, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	payments  PaymentRecorder
	publisher EventPublisher
	validator *validator.BookingValidator
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	payments PaymentRecorder,
	publisher EventPublisher,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		payments:  payments,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

// Create books a slot. When a booking with the same treatment, date and
// patient already exists the existing booking is returned with created
// false and nothing is written. The pre-check gives the friendly
// response; the unique index closes the race between two identical
// requests, and the loser re-reads the winner's document.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.Booking, bool, error) {
	s.sanitize(booking)
	if err := s.validator.Validate(booking); err != nil {
		return nil, false, apperrors.Validation(err.Error(), nil)
	}

	existing, err := s.repo.FindByKey(ctx, booking.Treatment, booking.Date, booking.Patient)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, bookingserrors.ErrNotFound) {
		return nil, false, apperrors.Internal("Failed to check for existing booking", err)
	}

	booking.Paid = false
	booking.TransactionID = ""

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingserrors.ErrDuplicate) {
			winner, findErr := s.repo.FindByKey(ctx, booking.Treatment, booking.Date, booking.Patient)
			if findErr != nil {
				return nil, false, apperrors.Internal("Failed to load existing booking", findErr)
			}
			return winner, false, nil
		}
		return nil, false, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"treatment", booking.Treatment,
		"date", booking.Date,
		"slot", booking.Slot,
	)

	s.publishConfirmed(ctx, booking)

	return booking, true, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

// GetByPatient returns a patient's bookings. Callers may only read
// their own; the requester email comes from the verified token.
func (s *bookingService) GetByPatient(ctx context.Context, requesterEmail, patientEmail string) ([]*model.Booking, error) {
	if patientEmail == "" {
		return nil, apperrors.InvalidInput("patientEmail query parameter is required")
	}
	if requesterEmail != patientEmail {
		return nil, apperrors.Forbidden("forbidden access")
	}

	bookings, err := s.repo.FindByPatient(ctx, patientEmail)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

// ConfirmPayment records the payment and marks the booking paid in one
// transaction. A missing booking rejects the whole operation so no
// orphaned payment document is ever written.
func (s *bookingService) ConfirmPayment(ctx context.Context, id string, payment *model.Payment) (*model.UpdateResult, error) {
	if payment.TransactionID == "" {
		return nil, apperrors.InvalidInput("transactionId is required")
	}
	if payment.Amount < 1 {
		return nil, apperrors.InvalidInput("amount must be positive")
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payment.BookingID = booking.ID
	payment.PatientEmail = booking.PatientEmail

	var result *model.UpdateResult
	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.payments.Create(sessCtx, payment); err != nil {
			return apperrors.Internal("Failed to record payment", err)
		}

		updated, err := s.repo.SetPaid(sessCtx, id, payment.TransactionID)
		if err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Booking", id)
			}
			return apperrors.Internal("Failed to mark booking paid", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to confirm payment", "booking_id", id, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Payment confirmed",
		"booking_id", id,
		"transaction_id", payment.TransactionID,
	)

	booking.Paid = true
	booking.TransactionID = payment.TransactionID
	s.publishPaid(ctx, booking)

	return result, nil
}

// Publishing detaches from the request context so a client disconnect
// does not drop the event.

func (s *bookingService) publishConfirmed(ctx context.Context, booking *model.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.AppointmentConfirmed(context.WithoutCancel(ctx), booking); err != nil {
		s.cfg.Log.Warn("Failed to publish appointment confirmation", "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) publishPaid(ctx context.Context, booking *model.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PaymentReceived(context.WithoutCancel(ctx), booking); err != nil {
		s.cfg.Log.Warn("Failed to publish payment receipt", "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) sanitize(booking *model.Booking) {
	booking.Treatment = sanitizer.NormalizeLabel(booking.Treatment)
	booking.Date = sanitizer.TrimAndNormalize(booking.Date)
	booking.Slot = sanitizer.TrimAndNormalize(booking.Slot)
	booking.Patient = sanitizer.NormalizeName(booking.Patient)
	booking.PatientEmail = sanitizer.NormalizeEmail(booking.PatientEmail)
	booking.Phone = sanitizer.NormalizePhone(booking.Phone)
}
