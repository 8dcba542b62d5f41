package model

import "time"

// Booking references its Service by treatment name, not id, and keeps
// the date as the exact display string the client booked with. Slot
// subtraction in the availability computation relies on string
// equality of both fields.
type Booking struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Treatment     string    `json:"treatment" bson:"treatment" validate:"required,min=2,max=100"`
	Date          string    `json:"date" bson:"date" validate:"required,min=4,max=40"`
	Slot          string    `json:"slot" bson:"slot" validate:"required,min=2,max=30"`
	Patient       string    `json:"patient" bson:"patient" validate:"required,min=2,max=100"`
	PatientEmail  string    `json:"patientEmail" bson:"patientEmail" validate:"required,email"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=20"`
	Paid          bool      `json:"paid" bson:"paid"`
	TransactionID string    `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
