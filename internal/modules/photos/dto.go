package photos

import "time"

type PhotoResponse struct {
	ID         int64     `json:"id" example:"7"`
	BookingID  string    `json:"bookingId" example:"TJ1756500000000"`
	PhotoType  string    `json:"photoType" example:"after"`
	URL        string    `json:"url" example:"/static/photos/TJ1756500000000/after_0f2c.jpg"`
	CapturedAt time.Time `json:"capturedAt"`
}

type UploadResponse struct {
	Photo          PhotoResponse `json:"photo"`
	HasCompleteSet bool          `json:"hasCompleteSet" example:"true"`
	SetSent        bool          `json:"setSent" example:"true"`
}

// SetResponse is the canonical before/after pair; sides are null while the
// set is incomplete.
type SetResponse struct {
	Before         *PhotoResponse `json:"before"`
	After          *PhotoResponse `json:"after"`
	HasCompleteSet bool           `json:"hasCompleteSet" example:"false"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"photo type must be before or after"`
}
