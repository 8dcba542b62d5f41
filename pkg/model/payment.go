package model

import "time"

// Payment is the append-only record written when a booking is paid.
// Amount is in whole currency units, matching the service price.
type Payment struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty"`
	BookingID     string    `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
	TransactionID string    `json:"transactionId" bson:"transactionId" validate:"required,min=4,max=100"`
	Amount        int       `json:"amount" bson:"amount" validate:"required,min=1"`
	PatientEmail  string    `json:"patientEmail,omitempty" bson:"patientEmail,omitempty" validate:"omitempty,email"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
