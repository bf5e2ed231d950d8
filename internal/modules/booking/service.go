package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/modules/pricing"
	"tidyjacks/internal/pkg/mailer"
	"tidyjacks/internal/pkg/validator"
)

type Service struct {
	bookings      bookingStore
	customers     customerStore
	verifier      paymentVerifier
	mail          mailer.Sender
	businessEmail string
	loggerf       func(format string, args ...interface{})
}

func NewService(bookings bookingStore, customers customerStore, verifier paymentVerifier, mail mailer.Sender, businessEmail string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings:      bookings,
		customers:     customers,
		verifier:      verifier,
		mail:          mail,
		businessEmail: businessEmail,
		loggerf:       loggerf,
	}
}

// newBookingRef mints the human-facing reference printed on every email.
func newBookingRef() string {
	return "TJ" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// CreateBooking validates the form, verifies any attached payment against
// the provider, notifies both parties and persists the booking. Emails go
// out before the insert so the customer always hears back; an insert
// failure is surfaced as an error and logged against the reference.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	req.Name = validator.Sanitize(req.Name)
	req.Address = validator.Sanitize(req.Address)
	req.Notes = validator.Sanitize(req.Notes)
	req.Phone = validator.Sanitize(req.Phone)
	req.TimeSlot = validator.Sanitize(req.TimeSlot)

	if req.Name == "" || req.Address == "" {
		return nil, ErrValidation
	}
	// Phone is optional; the format is only checked when one is given.
	if req.Phone != "" && !validator.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone must contain 8 to 15 digits", ErrValidation)
	}

	fullPrice, err := pricing.PriceCents(req.Service)
	if err != nil {
		return nil, err
	}
	deposit := pricing.DepositCents(fullPrice)

	b := &domain.Booking{
		BookingRef:       newBookingRef(),
		ServiceType:      req.Service,
		ServiceName:      pricing.ServiceName(req.Service),
		TotalAmountCents: fullPrice,
		BookingDate:      req.Date,
		TimeSlot:         req.TimeSlot,
		Notes:            req.Notes,
		DepositRequired:  pricing.DepositAvailable(req.Service),
		DepositCents:     deposit,
		PaymentStatus:    domain.PaymentUnpaid,
		PaymentType:      domain.PaymentType(req.PaymentType),
	}

	emailStatus := ""
	if req.PaymentIntentID != "" {
		vp, err := s.verifier.Verify(ctx, req.Service, req.PaymentType, req.PaymentIntentID)
		if err != nil {
			s.loggerf("level=error msg=payment verification failed ref=%s intent_id=%s err=%v", b.BookingRef, req.PaymentIntentID, err)
			return nil, err
		}
		b.StripePaymentIntent = vp.IntentID
		b.AmountPaidCents = vp.AmountCents
		b.PaymentType = vp.PaymentType
		b.PaymentStatus = pricing.StatusForAmount(vp.AmountCents, fullPrice, deposit)
		emailStatus = "paid"
		if vp.Processing {
			emailStatus = "processing"
		}
	}

	customer, err := s.customers.FindOrCreateByEmail(ctx, &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return nil, err
	}
	b.CustomerID = customer.ID

	d := mailer.BookingEmailData{
		BookingRef:      b.BookingRef,
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Phone,
		Address:         req.Address,
		ServiceName:     b.ServiceName,
		PriceLabel:      pricing.PriceLabel(req.Service),
		Date:            req.Date,
		SlotLabel:       mailer.SlotLabel(req.TimeSlot),
		Notes:           req.Notes,
		PaymentStatus:   emailStatus,
		PaymentType:     string(b.PaymentType),
		AmountPaidCents: b.AmountPaidCents,
		RemainingCents:  b.RemainingBalanceCents(),
		PaymentIntentID: b.StripePaymentIntent,
		SubmittedAt:     time.Now().Format("2006-01-02 15:04 MST"),
	}
	if err := s.mail.Send(mailer.CustomerBookingConfirmation(d)); err != nil {
		s.loggerf("level=error msg=failed to send customer confirmation ref=%s err=%v", b.BookingRef, err)
	}
	if err := s.mail.Send(mailer.BusinessBookingNotification(s.businessEmail, d)); err != nil {
		s.loggerf("level=error msg=failed to send business notification ref=%s err=%v", b.BookingRef, err)
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		s.loggerf("level=error msg=failed to persist booking ref=%s err=%v", b.BookingRef, err)
		return nil, err
	}
	s.loggerf("level=info msg=booking created ref=%s service=%s status=%s paid_cents=%d",
		b.BookingRef, b.ServiceType, b.PaymentStatus, b.AmountPaidCents)
	return b, nil
}

func (s *Service) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	b, err := s.bookings.FindByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		Success:         true,
		BookingID:       b.BookingRef,
		Service:         b.ServiceType,
		ServiceName:     b.ServiceName,
		PriceLabel:      pricing.PriceLabel(b.ServiceType),
		Date:            b.BookingDate,
		TimeSlot:        b.TimeSlot,
		PaymentStatus:   string(b.PaymentStatus),
		AmountPaidCents: b.AmountPaidCents,
		RemainingCents:  b.RemainingBalanceCents(),
	}
}
