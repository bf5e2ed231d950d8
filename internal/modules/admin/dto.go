package admin

import "time"

type DashboardResponse struct {
	TotalBookings    int            `json:"totalBookings" example:"128"`
	TotalCustomers   int64          `json:"totalCustomers" example:"97"`
	CollectedCents   int64          `json:"collectedCents" example:"1254000"`
	OutstandingCents int64          `json:"outstandingCents" example:"310000"`
	PendingPayments  int            `json:"pendingPayments" example:"12"`
	ByStatus         map[string]int `json:"byStatus"`
	RecentBookings   []BookingRow   `json:"recentBookings"`
}

type BookingRow struct {
	BookingID       string    `json:"bookingId" example:"TJ1756500000000"`
	Service         string    `json:"service" example:"small_home"`
	ServiceName     string    `json:"serviceName" example:"Small Single-Storey Home (2-3 bed)"`
	Date            string    `json:"date" example:"2026-09-14"`
	TimeSlot        string    `json:"timeSlot" example:"weekend_morning"`
	TotalCents      int64     `json:"totalCents" example:"20000"`
	AmountPaidCents int64     `json:"amountPaidCents" example:"6000"`
	RemainingCents  int64     `json:"remainingCents" example:"14000"`
	PaymentStatus   string    `json:"paymentStatus" example:"deposit_paid"`
	PaymentType     string    `json:"paymentType" example:"deposit"`
	Notes           string    `json:"notes,omitempty"`
	CustomerName    string    `json:"customerName" example:"Jane Smith"`
	CustomerEmail   string    `json:"customerEmail" example:"jane@example.com"`
	CustomerPhone   string    `json:"customerPhone" example:"+61 400 123 456"`
	CustomerAddress string    `json:"customerAddress" example:"12 Beach Rd, Cronulla NSW"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CustomerRow struct {
	ID        int64     `json:"id" example:"42"`
	Name      string    `json:"name" example:"Jane Smith"`
	Email     string    `json:"email" example:"jane@example.com"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdatePaymentRequest corrects a booking's payment record by hand, e.g.
// after a bank transfer or cash on completion. The resulting status is
// derived from the paid amount; failed and refunded are explicit overrides.
type UpdatePaymentRequest struct {
	BookingID       string `json:"bookingId" binding:"required" example:"TJ1756500000000"`
	AmountPaidCents *int64 `json:"amountPaidCents" example:"20000"`
	PaymentStatus   string `json:"paymentStatus" binding:"omitempty,oneof=unpaid deposit_paid paid_in_full failed refunded" example:"paid_in_full"`
	PaymentIntentID string `json:"paymentIntentId" example:"pi_3NxYz2Eab"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"booking not found"`
}
