package payment

// BookingData is the subset of the booking form the frontend sends along
// with an intent request. Only the service code decides the charge; the
// rest travels as intent metadata so the webhook can act without a
// booking row.
type BookingData struct {
	Service string `json:"service" binding:"required" example:"small_home"`
	Name    string `json:"name" example:"Jane Smith"`
	Email   string `json:"email" example:"jane@example.com"`
	Address string `json:"address" example:"12 Beach Rd, Cronulla"`
	Date    string `json:"date" example:"2026-09-14"`
	Slot    string `json:"timeSlot" example:"weekend_morning"`
}

type CreateIntentRequest struct {
	BookingData BookingData `json:"bookingData" binding:"required"`
	PaymentType string      `json:"paymentType" binding:"omitempty,oneof=deposit full" example:"deposit"`
}

type CreateIntentResponse struct {
	ClientSecret    string `json:"clientSecret" example:"pi_3Nx_secret_abc"`
	PaymentIntentID string `json:"paymentIntentId" example:"pi_3NxYz2Eab"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request"`
}
