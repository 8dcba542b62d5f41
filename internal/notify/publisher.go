package notify

import (
	"context"

	"drportal/pkg/kafka"
	"drportal/pkg/logger"
	"drportal/pkg/middleware"
	"drportal/pkg/model"
)

// Publisher is the producing side of the notification pipeline.
type Publisher interface {
	AppointmentConfirmed(ctx context.Context, booking *model.Booking) error
	PaymentReceived(ctx context.Context, booking *model.Booking) error
}

// KafkaPublisher emits booking events keyed by patient email so every
// patient's notifications stay ordered.
type KafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *KafkaPublisher) AppointmentConfirmed(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventAppointmentConfirmed, booking)
}

func (p *KafkaPublisher) PaymentReceived(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventPaymentReceived, booking)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, booking *model.Booking) error {
	event := BookingEvent{
		BookingID:    booking.ID,
		Treatment:    booking.Treatment,
		Date:         booking.Date,
		Slot:         booking.Slot,
		Patient:      booking.Patient,
		PatientEmail: booking.PatientEmail,
	}

	msg := kafka.NewMessage().
		WithKey(booking.PatientEmail).
		WithValue(event).
		WithEventType(eventType).
		WithCorrelationID(middleware.RequestID(ctx)).
		WithSource("api").
		Build()

	return p.producer.Publish(ctx, msg)
}

// LogPublisher stands in when no broker is configured; events are
// logged and dropped.
type LogPublisher struct {
	log *logger.Logger
}

func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) AppointmentConfirmed(ctx context.Context, booking *model.Booking) error {
	p.log.Info("notification skipped, no broker configured",
		"event", EventAppointmentConfirmed,
		"booking_id", booking.ID,
	)
	return nil
}

func (p *LogPublisher) PaymentReceived(ctx context.Context, booking *model.Booking) error {
	p.log.Info("notification skipped, no broker configured",
		"event", EventPaymentReceived,
		"booking_id", booking.ID,
	)
	return nil
}
