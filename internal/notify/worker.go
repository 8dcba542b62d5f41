package notify

import (
	"context"
	"fmt"

	"drportal/pkg/kafka"
	"drportal/pkg/logger"
)

// Worker turns booking events into patient emails. It runs behind the
// Kafka consumer, so a returned transient error triggers redelivery and
// a permanent one parks the message on the DLQ.
type Worker struct {
	sender EmailSender
	log    *logger.Logger
}

func NewWorker(sender EmailSender, log *logger.Logger) *Worker {
	return &Worker{
		sender: sender,
		log:    log,
	}
}

func (w *Worker) Handle(ctx context.Context, msg kafka.Message) error {
	var event BookingEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("undecodable booking event", err)
	}
	if event.PatientEmail == "" {
		return kafka.NewPermanentError(fmt.Sprintf("booking event without patient email, booking %q", event.BookingID), nil)
	}

	var email EmailMessage
	switch msg.GetEventType() {
	case EventAppointmentConfirmed:
		email = appointmentConfirmedEmail(event)
	case EventPaymentReceived:
		email = paymentReceivedEmail(event)
	default:
		return kafka.NewPermanentError(fmt.Sprintf("unknown event type %q", msg.GetEventType()), nil)
	}

	if err := w.sender.Send(ctx, email); err != nil {
		// provider hiccups are worth a retry
		return kafka.NewTransientError("email delivery failed", err)
	}

	w.log.Info("notification delivered",
		"event_type", msg.GetEventType(),
		"booking_id", event.BookingID,
	)
	return nil
}
