package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/repository"
)

/* ==================== MOCKS ==================== */

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) GetAllWithCustomers(ctx context.Context) ([]repository.BookingWithCustomer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.BookingWithCustomer), args.Error(1)
}

func (m *MockBookingStore) GetWithBalance(ctx context.Context) ([]repository.BookingWithCustomer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.BookingWithCustomer), args.Error(1)
}

func (m *MockBookingStore) FindByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdatePaymentByRef(ctx context.Context, ref string, status domain.PaymentStatus, amountPaidCents int64, intentID string) (*domain.Booking, error) {
	args := m.Called(ctx, ref, status, amountPaidCents, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) GetAll(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func nopLogger(string, ...interface{}) {}

/* ==================== TESTS ==================== */

func sampleRows() []repository.BookingWithCustomer {
	return []repository.BookingWithCustomer{
		{
			Booking: domain.Booking{
				BookingRef: "TJ1", TotalAmountCents: 20000, AmountPaidCents: 6000,
				PaymentStatus: domain.PaymentDepositPaid,
			},
			Customer: &domain.Customer{Name: "Jane Smith", Email: "jane@example.com"},
		},
		{
			Booking: domain.Booking{
				BookingRef: "TJ2", TotalAmountCents: 15000, AmountPaidCents: 15000,
				PaymentStatus: domain.PaymentPaidInFull,
			},
		},
		{
			Booking: domain.Booking{
				BookingRef: "TJ3", TotalAmountCents: 27000, AmountPaidCents: 0,
				PaymentStatus: domain.PaymentFailed,
			},
		},
	}
}

func TestDashboard(t *testing.T) {
	bookings := new(MockBookingStore)
	customers := new(MockCustomerStore)
	bookings.On("GetAllWithCustomers", mock.Anything).Return(sampleRows(), nil)
	customers.On("Count", mock.Anything).Return(int64(2), nil)

	svc := NewService(bookings, customers, nopLogger)
	resp, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.TotalBookings)
	assert.Equal(t, int64(2), resp.TotalCustomers)
	assert.Equal(t, int64(21000), resp.CollectedCents)
	// The failed booking owes nothing; only TJ1's balance is outstanding.
	assert.Equal(t, int64(14000), resp.OutstandingCents)
	assert.Equal(t, 1, resp.PendingPayments)
	assert.Equal(t, 1, resp.ByStatus["deposit_paid"])
	assert.Equal(t, 1, resp.ByStatus["paid_in_full"])
	assert.Equal(t, 1, resp.ByStatus["failed"])
	assert.Len(t, resp.RecentBookings, 3)
	assert.Equal(t, "TJ1", resp.RecentBookings[0].BookingID)
}

func TestListBookings_JoinsCustomer(t *testing.T) {
	bookings := new(MockBookingStore)
	bookings.On("GetAllWithCustomers", mock.Anything).Return(sampleRows(), nil)

	svc := NewService(bookings, new(MockCustomerStore), nopLogger)
	rows, err := svc.ListBookings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Jane Smith", rows[0].CustomerName)
	assert.Equal(t, int64(14000), rows[0].RemainingCents)
	assert.Empty(t, rows[1].CustomerName)
}

func TestUpdatePayment_DerivesStatusFromAmount(t *testing.T) {
	bookings := new(MockBookingStore)
	existing := &domain.Booking{
		BookingRef: "TJ1", TotalAmountCents: 20000, DepositCents: 6000,
		AmountPaidCents: 6000, PaymentStatus: domain.PaymentDepositPaid,
	}
	bookings.On("FindByRef", mock.Anything, "TJ1").Return(existing, nil)
	bookings.On("UpdatePaymentByRef", mock.Anything, "TJ1", domain.PaymentPaidInFull, int64(20000), "").
		Return(&domain.Booking{BookingRef: "TJ1", PaymentStatus: domain.PaymentPaidInFull, AmountPaidCents: 20000, TotalAmountCents: 20000}, nil)

	svc := NewService(bookings, new(MockCustomerStore), nopLogger)
	amount := int64(20000)
	// The admin asked for deposit_paid, but the amount says paid_in_full;
	// the derived status wins.
	b, err := svc.UpdatePayment(context.Background(), UpdatePaymentRequest{
		BookingID:       "TJ1",
		AmountPaidCents: &amount,
		PaymentStatus:   "deposit_paid",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaidInFull, b.PaymentStatus)
	bookings.AssertExpectations(t)
}

func TestUpdatePayment_RefundedOverride(t *testing.T) {
	bookings := new(MockBookingStore)
	existing := &domain.Booking{
		BookingRef: "TJ1", TotalAmountCents: 20000, DepositCents: 6000, AmountPaidCents: 20000,
	}
	bookings.On("FindByRef", mock.Anything, "TJ1").Return(existing, nil)
	bookings.On("UpdatePaymentByRef", mock.Anything, "TJ1", domain.PaymentRefunded, int64(20000), "").
		Return(&domain.Booking{BookingRef: "TJ1", PaymentStatus: domain.PaymentRefunded}, nil)

	svc := NewService(bookings, new(MockCustomerStore), nopLogger)
	b, err := svc.UpdatePayment(context.Background(), UpdatePaymentRequest{
		BookingID:     "TJ1",
		PaymentStatus: "refunded",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, b.PaymentStatus)
}

func TestUpdatePayment_Rejections(t *testing.T) {
	bookings := new(MockBookingStore)
	bookings.On("FindByRef", mock.Anything, "TJ404").Return(nil, nil)
	bookings.On("FindByRef", mock.Anything, "TJ1").
		Return(&domain.Booking{BookingRef: "TJ1", TotalAmountCents: 20000, DepositCents: 6000}, nil)

	svc := NewService(bookings, new(MockCustomerStore), nopLogger)

	_, err := svc.UpdatePayment(context.Background(), UpdatePaymentRequest{BookingID: "TJ404"})
	assert.ErrorIs(t, err, ErrNotFound)

	bad := int64(-1)
	_, err = svc.UpdatePayment(context.Background(), UpdatePaymentRequest{BookingID: "TJ1", AmountPaidCents: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}
