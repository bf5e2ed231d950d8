package mailer

import (
	"fmt"
	"strings"
)

// BookingEmailData carries everything the booking confirmation templates
// need. Amounts are cents and converted to dollars only here, at the
// presentation boundary.
type BookingEmailData struct {
	BookingRef      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Address         string
	ServiceName     string
	PriceLabel      string
	Date            string
	SlotLabel       string
	Notes           string
	PaymentStatus   string // "", "paid" or "processing"
	PaymentType     string // "deposit" or "full"
	AmountPaidCents int64
	RemainingCents  int64
	PaymentIntentID string
	SubmittedAt     string
}

func dollars(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d AUD", cents/100)
	}
	return fmt.Sprintf("$%d.%02d AUD", cents/100, cents%100)
}

// SlotLabel renders the booking-form slot codes for humans.
func SlotLabel(slot string) string {
	switch slot {
	case "weekday_afternoon":
		return "Weekday Afternoon (3pm-6pm)"
	case "weekend_morning":
		return "Weekend Morning (8am-12pm)"
	case "weekend_afternoon":
		return "Weekend Afternoon (12pm-5pm)"
	case "":
		return "Not specified"
	default:
		return slot
	}
}

func (d BookingEmailData) paymentLines() string {
	switch d.PaymentStatus {
	case "paid":
		if d.PaymentType == "deposit" {
			return fmt.Sprintf("PAYMENT CONFIRMED\n- Deposit Paid: %s\n- Remaining Balance: %s (due on completion)\n- Payment ID: %s",
				dollars(d.AmountPaidCents), dollars(d.RemainingCents), d.PaymentIntentID)
		}
		return fmt.Sprintf("PAYMENT CONFIRMED\n- Full Payment: %s\n- Payment ID: %s",
			dollars(d.AmountPaidCents), d.PaymentIntentID)
	case "processing":
		return fmt.Sprintf("PAYMENT PROCESSING\n- Amount: %s\n- Payment ID: %s\n- You'll receive confirmation once the payment completes",
			dollars(d.AmountPaidCents), d.PaymentIntentID)
	default:
		return ""
	}
}

// CustomerBookingConfirmation is the email the customer gets right after
// submitting a booking.
func CustomerBookingConfirmation(d BookingEmailData) Message {
	text := fmt.Sprintf(`Dear %s,

Thank you for choosing TidyJacks Professional Cleaning Services. We have received your booking request and will contact you within 24 hours to confirm the details.

BOOKING DETAILS:
- Booking ID: %s
- Service: %s
- Estimated Price: %s
- Preferred Date: %s
- Time Slot: %s
- Address: %s
%s
%s
NEXT STEPS:
Our team will review your booking request and contact you within 24 hours to confirm availability.

TidyJacks Professional Cleaning Services
Contact us directly: hellotidyjack@gmail.com
`,
		d.CustomerName, d.BookingRef, d.ServiceName, d.PriceLabel, d.Date, d.SlotLabel, d.Address,
		optionalLine("- Special Notes: ", d.Notes), blockOrEmpty(d.paymentLines()))

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color:#2563eb;">TidyJacks Booking Confirmation</h1>
  <p>Dear %s,</p>
  <p>Thank you for choosing TidyJacks Professional Cleaning Services. We have received your booking request and will contact you within 24 hours to confirm the details.</p>
  <h3>Booking Details</h3>
  <p><strong>Booking ID:</strong> %s<br>
  <strong>Service:</strong> %s<br>
  <strong>Estimated Price:</strong> %s<br>
  <strong>Preferred Date:</strong> %s<br>
  <strong>Time Slot:</strong> %s<br>
  <strong>Address:</strong> %s</p>
  %s
  <p><strong>Next Steps:</strong> our team will contact you within 24 hours to confirm availability.</p>
  <p>TidyJacks Professional Cleaning Services<br>
  <a href="mailto:hellotidyjack@gmail.com">hellotidyjack@gmail.com</a></p>
</div>`,
		htmlEscape(d.CustomerName), d.BookingRef, htmlEscape(d.ServiceName), d.PriceLabel,
		d.Date, d.SlotLabel, htmlEscape(d.Address), htmlParagraph(d.paymentLines()))

	return Message{
		To:      d.CustomerEmail,
		Subject: fmt.Sprintf("TidyJacks Booking Confirmation - Reference %s", d.BookingRef),
		Text:    text,
		HTML:    html,
	}
}

// BusinessBookingNotification tells the business a booking arrived.
func BusinessBookingNotification(businessEmail string, d BookingEmailData) Message {
	text := fmt.Sprintf(`NEW TIDYJACKS BOOKING RECEIVED

CUSTOMER INFORMATION:
- Name: %s
- Email: %s
- Phone: %s
- Address: %s

SERVICE DETAILS:
- Booking ID: %s
- Service: %s
- Estimated Price: %s
- Preferred Date: %s
- Time Slot: %s
%s
%s
Submitted: %s
Please contact the customer within 24 hours to confirm availability.
`,
		d.CustomerName, d.CustomerEmail, d.CustomerPhone, d.Address,
		d.BookingRef, d.ServiceName, d.PriceLabel, d.Date, d.SlotLabel,
		optionalLine("- Special Notes: ", d.Notes), blockOrEmpty(d.paymentLines()), d.SubmittedAt)

	return Message{
		To:      businessEmail,
		Subject: fmt.Sprintf("New TidyJacks Booking: %s - %s", d.ServiceName, d.CustomerName),
		Text:    text,
	}
}

// PaymentConfirmedData backs the webhook-driven final confirmation emails.
type PaymentConfirmedData struct {
	CustomerEmail string
	CustomerName  string
	ServiceCode   string
	AmountCents   int64
	IntentID      string
}

func PaymentConfirmedCustomer(d PaymentConfirmedData) Message {
	text := fmt.Sprintf(`Payment Confirmed!

Your payment has been successfully processed.
Amount: %s
Payment ID: %s
Service: %s

Thank you for choosing TidyJacks Professional Cleaning Services!
`, dollars(d.AmountCents), d.IntentID, d.ServiceCode)

	return Message{
		To:      d.CustomerEmail,
		Subject: fmt.Sprintf("Payment Confirmed - TidyJacks Booking %s", d.ServiceCode),
		Text:    text,
	}
}

func PaymentConfirmedBusiness(businessEmail string, d PaymentConfirmedData) Message {
	name := d.CustomerName
	if name == "" {
		name = "Customer"
	}
	text := fmt.Sprintf(`PAYMENT CONFIRMED

Amount: %s
Customer: %s
Email: %s
Service: %s
Payment ID: %s
Status: completed via webhook
`, dollars(d.AmountCents), name, d.CustomerEmail, d.ServiceCode, d.IntentID)

	return Message{
		To:      businessEmail,
		Subject: fmt.Sprintf("Payment Confirmed - %s - %s", name, dollars(d.AmountCents)),
		Text:    text,
	}
}

func PaymentFailedCustomer(d PaymentConfirmedData) Message {
	text := fmt.Sprintf(`We encountered an issue processing your payment for TidyJacks cleaning services.

Amount: %s
Service: %s

Please contact us at hellotidyjack@gmail.com to resolve this issue.
`, dollars(d.AmountCents), d.ServiceCode)

	return Message{
		To:      d.CustomerEmail,
		Subject: fmt.Sprintf("Payment Issue - TidyJacks Booking %s", d.ServiceCode),
		Text:    text,
	}
}

// PhotosEmailData backs the before/after delivery email.
type PhotosEmailData struct {
	CustomerEmail string
	CustomerName  string
	BookingRef    string
	ServiceName   string
	Date          string
	TimeSlot      string
	BeforePath    string
	AfterPath     string
}

func BeforeAfterPhotos(d PhotosEmailData) Message {
	text := fmt.Sprintf(`Hi %s,

Great news! We've completed your window cleaning service for booking %s.
Please see the attached before and after photos showing the results.

SERVICE DETAILS:
- Service: %s
- Date: %s
- Time: %s

We hope you're delighted with the results! If you have any questions or
would like to schedule another service, just reply to this email.

Thank you for choosing TidyJacks!
`, d.CustomerName, d.BookingRef, d.ServiceName, d.Date, d.TimeSlot)

	return Message{
		To:      d.CustomerEmail,
		Subject: fmt.Sprintf("Job Complete - Before & After Photos (%s)", d.BookingRef),
		Text:    text,
		Attachments: []Attachment{
			{Filename: fmt.Sprintf("Before-Photo-%s.jpg", d.BookingRef), Path: d.BeforePath},
			{Filename: fmt.Sprintf("After-Photo-%s.jpg", d.BookingRef), Path: d.AfterPath},
		},
	}
}

func optionalLine(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v + "\n"
}

func blockOrEmpty(v string) string {
	if v == "" {
		return ""
	}
	return "\n" + v + "\n"
}

func htmlParagraph(v string) string {
	if v == "" {
		return ""
	}
	return "<p>" + strings.ReplaceAll(htmlEscape(v), "\n", "<br>") + "</p>"
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func htmlEscape(v string) string { return htmlEscaper.Replace(v) }
