package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	stripe "github.com/stripe/stripe-go/v76"

	"tidyjacks/internal/modules/pricing"
	"tidyjacks/internal/pkg/mailer"
)

// Service creates payment intents for server-computed amounts and
// reconciles asynchronous webhook events into booking state.
type Service struct {
	gw            gateway
	intents       intentLedger
	bookings      bookingReconciler
	mail          mailer.Sender
	businessEmail string
	loggerf       func(format string, args ...interface{})
}

func NewService(gw gateway, intents intentLedger, bookings bookingReconciler, mail mailer.Sender, businessEmail string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		gw:            gw,
		intents:       intents,
		bookings:      bookings,
		mail:          mail,
		businessEmail: businessEmail,
		loggerf:       loggerf,
	}
}

// CreateIntent charges a server-derived amount for the requested service.
// Client-sent amounts are never read. Deposit requests for services too
// cheap to split fall back to the full price.
func (s *Service) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error) {
	if s.gw == nil {
		return nil, ErrNotConfigured
	}
	service := req.BookingData.Service
	fullPrice, err := pricing.PriceCents(service)
	if err != nil {
		return nil, err
	}

	paymentType := req.PaymentType
	amount := fullPrice
	if paymentType == "deposit" && pricing.DepositAvailable(service) {
		amount = pricing.DepositCents(fullPrice)
	} else if paymentType != "full" {
		paymentType = "full"
	}

	metadata := map[string]string{
		"bookingType":   service,
		"paymentType":   paymentType,
		"fullAmount":    strconv.FormatInt(fullPrice, 10),
		"customerEmail": req.BookingData.Email,
		"customerName":  req.BookingData.Name,
		"address":       req.BookingData.Address,
		"timeSlot":      req.BookingData.Slot,
		"date":          req.BookingData.Date,
	}
	description := fmt.Sprintf("TidyJacks %s Service", pricing.ServiceName(service))

	pi, err := s.gw.CreatePaymentIntent(ctx, amount, metadata, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	s.loggerf("level=info msg=payment intent created intent_id=%s service=%s amount_cents=%d type=%s", pi.ID, service, amount, paymentType)

	return &CreateIntentResponse{ClientSecret: pi.ClientSecret, PaymentIntentID: pi.ID}, nil
}

// HandleWebhook verifies the signature, then dispatches the event. Unknown
// event types are acknowledged and ignored for forward compatibility.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	if s.gw == nil {
		return ErrNotConfigured
	}
	event, err := s.gw.ConstructEvent(payload, sigHeader)
	if err != nil {
		s.loggerf("level=error msg=webhook signature verification failed err=%v", err)
		return ErrInvalidSignature
	}

	switch event.Type {
	case "payment_intent.succeeded":
		return s.handleSucceeded(ctx, event)
	case "payment_intent.payment_failed":
		return s.handleFailed(ctx, event)
	default:
		s.loggerf("level=info msg=unhandled webhook event type=%s", event.Type)
		return nil
	}
}

func (s *Service) handleSucceeded(ctx context.Context, event stripe.Event) error {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return fmt.Errorf("parse payment intent: %w", err)
	}
	s.loggerf("level=info msg=payment succeeded intent_id=%s amount_cents=%d", pi.ID, pi.Amount)

	// Claim first: re-delivered events return first=false and skip email.
	first, err := s.intents.ClaimSucceeded(ctx, pi.ID, pi.Amount, string(event.Data.Raw))
	if err != nil {
		return err
	}

	if err := s.reconcileBooking(ctx, &pi); err != nil {
		s.loggerf("level=error msg=failed to reconcile booking from webhook intent_id=%s err=%v", pi.ID, err)
	}

	if first && pi.Metadata["customerEmail"] != "" {
		d := mailer.PaymentConfirmedData{
			CustomerEmail: pi.Metadata["customerEmail"],
			CustomerName:  pi.Metadata["customerName"],
			ServiceCode:   pi.Metadata["bookingType"],
			AmountCents:   pi.Amount,
			IntentID:      pi.ID,
		}
		if err := s.mail.Send(mailer.PaymentConfirmedCustomer(d)); err != nil {
			s.loggerf("level=error msg=failed to send payment confirmation intent_id=%s err=%v", pi.ID, err)
		}
		if err := s.mail.Send(mailer.PaymentConfirmedBusiness(s.businessEmail, d)); err != nil {
			s.loggerf("level=error msg=failed to send business payment notification intent_id=%s err=%v", pi.ID, err)
		}
	}
	return nil
}

// reconcileBooking advances the booking attached to the intent using the
// same derivation rule as the synchronous path. The price basis is the
// booking row when one exists, otherwise the intent metadata (the webhook
// may arrive before the booking is submitted).
func (s *Service) reconcileBooking(ctx context.Context, pi *stripe.PaymentIntent) error {
	var fullPrice int64

	b, err := s.bookings.FindByIntentID(ctx, pi.ID)
	if err != nil {
		return err
	}
	if b != nil {
		fullPrice = b.TotalAmountCents
	} else if svc := pi.Metadata["bookingType"]; pricing.KnownService(svc) {
		fullPrice, _ = pricing.PriceCents(svc)
	} else {
		s.loggerf("level=info msg=no booking or known service for intent intent_id=%s", pi.ID)
		return nil
	}

	status := pricing.StatusForAmount(pi.Amount, fullPrice, pricing.DepositCents(fullPrice))
	moved, err := s.bookings.ApplyPaymentOutcome(ctx, pi.ID, pi.Amount, status)
	if err != nil {
		return err
	}
	if !moved {
		s.loggerf("level=info msg=booking already at or past webhook amount intent_id=%s", pi.ID)
	}
	return nil
}

func (s *Service) handleFailed(ctx context.Context, event stripe.Event) error {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return fmt.Errorf("parse payment intent: %w", err)
	}
	if pi.LastPaymentError != nil {
		s.loggerf("level=error msg=payment failed intent_id=%s code=%s reason=%q", pi.ID, pi.LastPaymentError.Code, pi.LastPaymentError.Msg)
	} else {
		s.loggerf("level=error msg=payment failed intent_id=%s", pi.ID)
	}

	if err := s.intents.RecordFailure(ctx, pi.ID, pi.Amount, string(event.Data.Raw)); err != nil {
		return err
	}
	// Amount paid stays untouched; a failed later attempt must not erase a
	// prior partial payment.
	if err := s.bookings.MarkFailedByIntent(ctx, pi.ID); err != nil {
		s.loggerf("level=error msg=failed to flag booking failed intent_id=%s err=%v", pi.ID, err)
	}

	if email := pi.Metadata["customerEmail"]; email != "" {
		d := mailer.PaymentConfirmedData{
			CustomerEmail: email,
			ServiceCode:   pi.Metadata["bookingType"],
			AmountCents:   pi.Amount,
			IntentID:      pi.ID,
		}
		if err := s.mail.Send(mailer.PaymentFailedCustomer(d)); err != nil {
			s.loggerf("level=error msg=failed to send payment failure notice intent_id=%s err=%v", pi.ID, err)
		}
	}
	return nil
}
