package domain

import "time"

type PhotoType string

const (
	PhotoBefore PhotoType = "before"
	PhotoAfter  PhotoType = "after"
)

// Photo is one before/after shot for a booking. Photos are never updated in
// place; a re-upload inserts a new row and the most recent of each type is
// the canonical one.
type Photo struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	PhotoType  PhotoType `json:"photo_type"`
	FilePath   string    `json:"file_path"`
	FileURL    string    `json:"file_url"`
	CapturedAt time.Time `json:"captured_at"`
	CreatedAt  time.Time `json:"created_at"`
}
