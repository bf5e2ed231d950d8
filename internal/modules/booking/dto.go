package booking

type CreateBookingRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Jane Smith"`
	Email    string `json:"email" binding:"required,email,max=254" example:"jane@example.com"`
	Phone    string `json:"phone" binding:"omitempty,max=25" example:"+61 400 123 456"`
	Address  string `json:"address" binding:"required,max=500" example:"12 Beach Rd, Cronulla NSW"`
	Service  string `json:"service" binding:"required" example:"small_home"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02" example:"2026-09-14"`
	// Slot is free-form; known codes get friendly labels in emails.
	TimeSlot string `json:"slot" binding:"omitempty,max=50" example:"weekend_morning"`
	Notes    string `json:"notes" binding:"omitempty,max=1000" example:"Gate code 4521"`

	// Optional: set when the customer paid before submitting the form. The
	// intent is verified against Stripe; the fields below never set amounts.
	PaymentIntentID string `json:"paymentIntentId" example:"pi_3NxYz2Eab"`
	PaymentType     string `json:"paymentType" binding:"omitempty,oneof=deposit full" example:"deposit"`
}

type BookingResponse struct {
	Success         bool   `json:"success" example:"true"`
	BookingID       string `json:"bookingId" example:"TJ1756500000000"`
	Service         string `json:"service" example:"small_home"`
	ServiceName     string `json:"serviceName" example:"Small Single-Storey Home (2-3 bed)"`
	PriceLabel      string `json:"price" example:"$200"`
	Date            string `json:"date" example:"2026-09-14"`
	TimeSlot        string `json:"timeSlot" example:"weekend_morning"`
	PaymentStatus   string `json:"paymentStatus" example:"deposit_paid"`
	AmountPaidCents int64  `json:"amountPaidCents" example:"6000"`
	RemainingCents  int64  `json:"remainingCents" example:"14000"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"validation failed"`
}
