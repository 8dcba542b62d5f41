package notify

// Event types carried on the notification topic.
const (
	EventAppointmentConfirmed = "appointment.confirmed"
	EventPaymentReceived      = "payment.received"
)

// BookingEvent is the notification payload. It carries everything the
// email templates need so the worker never reads the database.
type BookingEvent struct {
	BookingID    string `json:"bookingId"`
	Treatment    string `json:"treatment"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
	Patient      string `json:"patient"`
	PatientEmail string `json:"patientEmail"`
}
