package notify

import "fmt"

const clinicAddress = `<h3>Our Address</h3>
<p>West Shewrapara, Mirpur-10, Dhaka</p>
<p>Bangladesh</p>`

func appointmentConfirmedEmail(event BookingEvent) EmailMessage {
	subject := fmt.Sprintf("Your appointment for %s is on %s at %s is confirmed",
		event.Treatment, event.Date, event.Slot)

	return EmailMessage{
		To:      event.PatientEmail,
		ToName:  event.Patient,
		Subject: subject,
		Body:    subject,
		HTML: fmt.Sprintf(`<div>
<p>Hello %s,</p>
<h3>Your appointment for %s is confirmed</h3>
<p>Looking forward to seeing you on %s at %s.</p>
%s
</div>`, event.Patient, event.Treatment, event.Date, event.Slot, clinicAddress),
	}
}

func paymentReceivedEmail(event BookingEvent) EmailMessage {
	subject := fmt.Sprintf("We have received your payment for %s on %s at %s",
		event.Treatment, event.Date, event.Slot)

	return EmailMessage{
		To:      event.PatientEmail,
		ToName:  event.Patient,
		Subject: subject,
		Body: fmt.Sprintf("Your payment for the appointment for %s on %s at %s is confirmed",
			event.Treatment, event.Date, event.Slot),
		HTML: fmt.Sprintf(`<div>
<p>Hello %s,</p>
<h3>Thank you for your payment.</h3>
<p>Looking forward to seeing you on %s at %s.</p>
%s
</div>`, event.Patient, event.Date, event.Slot, clinicAddress),
	}
}
