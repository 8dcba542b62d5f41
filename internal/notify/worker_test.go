package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"drportal/pkg/kafka"
	"drportal/pkg/logger"
)

type mockSender struct {
	sendFunc func(ctx context.Context, msg EmailMessage) error
	sent     []EmailMessage
}

func (m *mockSender) Send(ctx context.Context, msg EmailMessage) error {
	if m.sendFunc != nil {
		if err := m.sendFunc(ctx, msg); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: io.Discard, Service: "test"})
}

func eventMessage(t *testing.T, eventType string, event BookingEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return kafka.Message{
		Key:   event.PatientEmail,
		Value: value,
		Headers: map[string]string{
			kafka.HeaderEventType: eventType,
		},
	}
}

func testEvent() BookingEvent {
	return BookingEvent{
		BookingID:    "abc123",
		Treatment:    "Teeth Cleaning",
		Date:         "May 16, 2026",
		Slot:         "9:00 AM",
		Patient:      "Jane Doe",
		PatientEmail: "jane@example.com",
	}
}

func TestWorkerSendsConfirmationEmail(t *testing.T) {
	sender := &mockSender{}
	worker := NewWorker(sender, testLogger())

	msg := eventMessage(t, EventAppointmentConfirmed, testEvent())
	if err := worker.Handle(context.Background(), msg); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	email := sender.sent[0]
	if email.To != "jane@example.com" {
		t.Errorf("to = %q, want patient email", email.To)
	}
	if !strings.Contains(email.Subject, "Teeth Cleaning") || !strings.Contains(email.Subject, "9:00 AM") {
		t.Errorf("subject = %q, want treatment and slot", email.Subject)
	}
}

func TestWorkerSendsPaymentEmail(t *testing.T) {
	sender := &mockSender{}
	worker := NewWorker(sender, testLogger())

	msg := eventMessage(t, EventPaymentReceived, testEvent())
	if err := worker.Handle(context.Background(), msg); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].Subject, "payment") {
		t.Errorf("subject = %q, want a payment receipt", sender.sent[0].Subject)
	}
}

func TestWorkerRejectsBadPayloadPermanently(t *testing.T) {
	sender := &mockSender{}
	worker := NewWorker(sender, testLogger())

	msg := kafka.Message{
		Value:   []byte("not json"),
		Headers: map[string]string{kafka.HeaderEventType: EventAppointmentConfirmed},
	}

	err := worker.Handle(context.Background(), msg)
	if err == nil {
		t.Fatal("Handle() accepted an undecodable payload")
	}
	var handlerErr *kafka.HandlerError
	if !errors.As(err, &handlerErr) || handlerErr.Type != kafka.ErrorTypePermanent {
		t.Errorf("error = %v, want permanent handler error", err)
	}
	if len(sender.sent) != 0 {
		t.Error("an email was sent for a bad payload")
	}
}

func TestWorkerUnknownEventTypeIsPermanent(t *testing.T) {
	worker := NewWorker(&mockSender{}, testLogger())

	msg := eventMessage(t, "booking.cancelled", testEvent())
	err := worker.Handle(context.Background(), msg)

	var handlerErr *kafka.HandlerError
	if !errors.As(err, &handlerErr) || handlerErr.Type != kafka.ErrorTypePermanent {
		t.Errorf("error = %v, want permanent handler error", err)
	}
}

func TestWorkerSenderFailureIsTransient(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg EmailMessage) error {
			return errors.New("sendgrid returned status 503")
		},
	}
	worker := NewWorker(sender, testLogger())

	msg := eventMessage(t, EventAppointmentConfirmed, testEvent())
	err := worker.Handle(context.Background(), msg)

	var handlerErr *kafka.HandlerError
	if !errors.As(err, &handlerErr) || handlerErr.Type != kafka.ErrorTypeTransient {
		t.Errorf("error = %v, want transient handler error", err)
	}
}
