package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tidyjacks/internal/domain"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

type photoModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;index"`
	PhotoType  string    `gorm:"column:photo_type;index"`
	FilePath   string    `gorm:"column:file_path"`
	FileURL    string    `gorm:"column:file_url"`
	CapturedAt time.Time `gorm:"column:captured_at"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (photoModel) TableName() string { return "photos" }

func toDomainPhoto(m photoModel) *domain.Photo {
	return &domain.Photo{
		ID:         m.ID,
		BookingID:  m.BookingID,
		PhotoType:  domain.PhotoType(m.PhotoType),
		FilePath:   m.FilePath,
		FileURL:    m.FileURL,
		CapturedAt: m.CapturedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PhotoRepository) Create(ctx context.Context, p *domain.Photo) error {
	m := photoModel{
		BookingID:  p.BookingID,
		PhotoType:  string(p.PhotoType),
		FilePath:   p.FilePath,
		FileURL:    p.FileURL,
		CapturedAt: p.CapturedAt,
		CreatedAt:  p.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPhoto(m)
	return nil
}

// GetByBookingID returns the booking's photos, newest first, so that the
// first photo of each type encountered is the canonical one.
func (r *PhotoRepository) GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Photo, error) {
	var ms []photoModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Photo, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPhoto(m))
	}
	return out, nil
}
