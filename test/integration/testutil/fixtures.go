package testutil

import "drportal/pkg/model"

type BookingBuilder struct {
	b model.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		b: model.Booking{
			Treatment:    "Teeth Cleaning",
			Date:         "May 15, 2026",
			Slot:         "10:00 AM - 11:00 AM",
			Patient:      "Jane Roe",
			PatientEmail: "jane@example.com",
			Phone:        "01711111111",
		},
	}
}

func (f *BookingBuilder) WithTreatment(name string) *BookingBuilder {
	f.b.Treatment = name
	return f
}

func (f *BookingBuilder) WithDate(date string) *BookingBuilder {
	f.b.Date = date
	return f
}

func (f *BookingBuilder) WithSlot(slot string) *BookingBuilder {
	f.b.Slot = slot
	return f
}

func (f *BookingBuilder) WithPatient(name, email string) *BookingBuilder {
	f.b.Patient = name
	f.b.PatientEmail = email
	return f
}

func (f *BookingBuilder) Build() model.Booking {
	return f.b
}

func ValidBooking() model.Booking {
	return NewBookingBuilder().Build()
}

// CleaningService is the catalog entry the default booking targets.
func CleaningService() model.Service {
	return model.Service{
		Name:  "Teeth Cleaning",
		Price: 80,
		Slots: []string{
			"08:00 AM - 09:00 AM",
			"09:00 AM - 10:00 AM",
			"10:00 AM - 11:00 AM",
		},
	}
}

func WhiteningService() model.Service {
	return model.Service{
		Name:  "Teeth Whitening",
		Price: 120,
		Slots: []string{
			"09:00 AM - 10:00 AM",
			"10:00 AM - 11:00 AM",
		},
	}
}

func ValidProfile(email string) model.User {
	return model.User{
		Email: email,
		Name:  "Jane Roe",
		Phone: "01711111111",
	}
}

func ValidDoctor() model.Doctor {
	return model.Doctor{
		Name:      "Dr. Sarah Ahmed",
		Email:     "sarah@doctors-portal.example",
		Specialty: "Orthodontics",
		Education: "BDS, MS",
	}
}
