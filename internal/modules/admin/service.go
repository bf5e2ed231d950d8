package admin

import (
	"context"
	"fmt"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/modules/pricing"
	"tidyjacks/internal/repository"
)

type Service struct {
	bookings  bookingStore
	customers customerStore
	loggerf   func(format string, args ...interface{})
}

func NewService(bookings bookingStore, customers customerStore, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{bookings: bookings, customers: customers, loggerf: loggerf}
}

// Dashboard aggregates headline numbers over all bookings. The data set is
// a single small business, so summing in memory beats a pile of SQL.
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	rows, err := s.bookings.GetAllWithCustomers(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		TotalBookings:  len(rows),
		TotalCustomers: customerCount,
		ByStatus:       make(map[string]int),
	}
	for _, r := range rows {
		resp.CollectedCents += r.Booking.AmountPaidCents
		resp.ByStatus[string(r.Booking.PaymentStatus)]++
		// Failed and refunded bookings are not owed money.
		switch r.Booking.PaymentStatus {
		case domain.PaymentFailed, domain.PaymentRefunded:
		default:
			resp.OutstandingCents += r.Booking.RemainingBalanceCents()
			if r.Booking.RemainingBalanceCents() > 0 {
				resp.PendingPayments++
			}
		}
	}

	// Rows arrive newest first from the repository.
	recent := rows
	if len(recent) > 5 {
		recent = recent[:5]
	}
	resp.RecentBookings = make([]BookingRow, 0, len(recent))
	for _, r := range recent {
		resp.RecentBookings = append(resp.RecentBookings, toBookingRow(r))
	}
	return resp, nil
}

func toBookingRow(r repository.BookingWithCustomer) BookingRow {
	row := BookingRow{
		BookingID:       r.Booking.BookingRef,
		Service:         r.Booking.ServiceType,
		ServiceName:     r.Booking.ServiceName,
		Date:            r.Booking.BookingDate,
		TimeSlot:        r.Booking.TimeSlot,
		TotalCents:      r.Booking.TotalAmountCents,
		AmountPaidCents: r.Booking.AmountPaidCents,
		RemainingCents:  r.Booking.RemainingBalanceCents(),
		PaymentStatus:   string(r.Booking.PaymentStatus),
		PaymentType:     string(r.Booking.PaymentType),
		Notes:           r.Booking.Notes,
		CreatedAt:       r.Booking.CreatedAt,
	}
	if r.Customer != nil {
		row.CustomerName = r.Customer.Name
		row.CustomerEmail = r.Customer.Email
		row.CustomerPhone = r.Customer.Phone
		row.CustomerAddress = r.Customer.Address
	}
	return row
}

func (s *Service) ListBookings(ctx context.Context) ([]BookingRow, error) {
	rows, err := s.bookings.GetAllWithCustomers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BookingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBookingRow(r))
	}
	return out, nil
}

// ListOutstanding returns bookings that still owe money, for chasing
// balances on completed jobs.
func (s *Service) ListOutstanding(ctx context.Context) ([]BookingRow, error) {
	rows, err := s.bookings.GetWithBalance(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BookingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBookingRow(r))
	}
	return out, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]CustomerRow, error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerRow{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Address:   c.Address,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

// UpdatePayment corrects a booking's payment record. The status is derived
// from the paid amount with the same rule the payment paths use, so a manual
// edit can never leave amount and status disagreeing. Failed and refunded
// are accepted as explicit overrides since no amount implies them.
func (s *Service) UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (*domain.Booking, error) {
	b, err := s.bookings.FindByRef(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	amount := b.AmountPaidCents
	if req.AmountPaidCents != nil {
		if *req.AmountPaidCents < 0 {
			return nil, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
		}
		amount = *req.AmountPaidCents
	}

	status := pricing.StatusForAmount(amount, b.TotalAmountCents, b.DepositCents)
	switch domain.PaymentStatus(req.PaymentStatus) {
	case domain.PaymentFailed:
		status = domain.PaymentFailed
	case domain.PaymentRefunded:
		status = domain.PaymentRefunded
	default:
		if req.PaymentStatus != "" && req.PaymentStatus != string(status) {
			s.loggerf("level=info msg=requested status overridden by derived status ref=%s requested=%s derived=%s",
				req.BookingID, req.PaymentStatus, status)
		}
	}

	updated, err := s.bookings.UpdatePaymentByRef(ctx, req.BookingID, status, amount, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	s.loggerf("level=info msg=payment manually updated ref=%s status=%s amount_cents=%d", req.BookingID, status, amount)
	return updated, nil
}
