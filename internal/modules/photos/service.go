package photos

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/pkg/mailer"
)

const (
	MaxFileSize   = 10 * 1024 * 1024
	StaticURLBase = "/static/photos"
)

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Service stores before/after job photos on disk and emails the customer
// the finished set exactly once.
type Service struct {
	photos     photoStore
	bookings   bookingStore
	customers  customerStore
	mail       mailer.Sender
	baseDir    string
	staticBase string
	loggerf    func(format string, args ...interface{})
}

func NewService(photos photoStore, bookings bookingStore, customers customerStore, mail mailer.Sender, baseDir string, loggerf func(format string, args ...interface{})) *Service {
	if baseDir == "" {
		baseDir = "./uploads/photos"
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		photos:     photos,
		bookings:   bookings,
		customers:  customers,
		mail:       mail,
		baseDir:    baseDir,
		staticBase: StaticURLBase,
		loggerf:    loggerf,
	}
}

// resolveBooking accepts either the TJ reference or the numeric row id, so
// field staff can use whatever is on the job sheet.
func (s *Service) resolveBooking(ctx context.Context, refOrID string) (*domain.Booking, error) {
	if strings.HasPrefix(refOrID, "TJ") {
		b, err := s.bookings.FindByRef(ctx, refOrID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, ErrBookingNotFound
		}
		return b, nil
	}
	id, err := strconv.ParseInt(refOrID, 10, 64)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// UploadResult reports what happened alongside the stored photo: whether
// the booking now has a complete before/after set and whether this upload
// triggered the automatic set email.
type UploadResult struct {
	Photo       *domain.Photo
	CompleteSet bool
	SetSent     bool
}

// Upload stores one photo and, if the booking now has both a before and an
// after shot, emails the customer the set. The email fires at most once per
// booking no matter how many times photos are re-uploaded.
func (s *Service) Upload(ctx context.Context, refOrID, photoType string, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	pt := domain.PhotoType(photoType)
	if pt != domain.PhotoBefore && pt != domain.PhotoAfter {
		return nil, ErrInvalidPhotoType
	}

	b, err := s.resolveBooking(ctx, refOrID)
	if err != nil {
		return nil, err
	}

	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	// Sniff the real content type; the client-sent header is not trusted.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrInvalidMimeType
	}
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	absDir := filepath.Join(s.baseDir, b.BookingRef)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("create photo directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s%s", photoType, uuid.New().String(), ext)
	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("create photo file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("write photo file: %w", err)
	}

	relPath := filepath.Join(b.BookingRef, filename)
	now := time.Now().UTC()
	p := &domain.Photo{
		BookingID:  b.ID,
		PhotoType:  pt,
		FilePath:   relPath,
		FileURL:    s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"),
		CapturedAt: now,
		CreatedAt:  now,
	}
	if err := s.photos.Create(ctx, p); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("save photo record: %w", err)
	}
	s.loggerf("level=info msg=photo uploaded ref=%s type=%s path=%s", b.BookingRef, photoType, relPath)

	res := &UploadResult{Photo: p}
	before, after, err := s.canonicalPair(ctx, b.ID)
	if err != nil {
		s.loggerf("level=error msg=failed to check photo set ref=%s err=%v", b.BookingRef, err)
		return res, nil
	}
	res.CompleteSet = before != nil && after != nil

	if res.CompleteSet {
		sent, err := s.maybeSendSet(ctx, b, before, after)
		if err != nil {
			// The photo itself is stored; a delivery problem is logged,
			// not surfaced as an upload failure.
			s.loggerf("level=error msg=failed to send photo set ref=%s err=%v", b.BookingRef, err)
			return res, nil
		}
		res.SetSent = sent
	}
	return res, nil
}

// maybeSendSet emails the before/after pair if this caller wins the claim
// on photos_emailed_at, which keeps concurrent uploads from double-sending.
func (s *Service) maybeSendSet(ctx context.Context, b *domain.Booking, before, after *domain.Photo) (bool, error) {
	won, err := s.bookings.ClaimPhotosEmail(ctx, b.ID)
	if err != nil {
		return false, err
	}
	if !won {
		return false, nil
	}

	if err := s.sendSet(ctx, b, before, after); err != nil {
		return false, err
	}
	s.loggerf("level=info msg=photo set emailed ref=%s", b.BookingRef)
	return true, nil
}

// Resend emails the current photo set again on explicit request,
// regardless of whether the automatic send already happened.
func (s *Service) Resend(ctx context.Context, refOrID string) error {
	b, err := s.resolveBooking(ctx, refOrID)
	if err != nil {
		return err
	}
	before, after, err := s.canonicalPair(ctx, b.ID)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return ErrSetIncomplete
	}
	// Keep the sent marker honest even if the automatic send never ran.
	_, _ = s.bookings.ClaimPhotosEmail(ctx, b.ID)
	if err := s.sendSet(ctx, b, before, after); err != nil {
		return err
	}
	s.loggerf("level=info msg=photo set re-sent ref=%s", b.BookingRef)
	return nil
}

func (s *Service) sendSet(ctx context.Context, b *domain.Booking, before, after *domain.Photo) error {
	customer, err := s.customers.FindByID(ctx, b.CustomerID)
	if err != nil || customer == nil || customer.Email == "" {
		if err != nil {
			return err
		}
		return ErrNoCustomerEmail
	}

	return s.mail.Send(mailer.BeforeAfterPhotos(mailer.PhotosEmailData{
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
		BookingRef:    b.BookingRef,
		ServiceName:   b.ServiceName,
		Date:          b.BookingDate,
		TimeSlot:      mailer.SlotLabel(b.TimeSlot),
		BeforePath:    filepath.Join(s.baseDir, before.FilePath),
		AfterPath:     filepath.Join(s.baseDir, after.FilePath),
	}))
}

// canonicalPair picks the newest photo of each type.
func (s *Service) canonicalPair(ctx context.Context, bookingID int64) (before, after *domain.Photo, err error) {
	list, err := s.photos.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	for i := range list {
		p := &list[i]
		switch {
		case p.PhotoType == domain.PhotoBefore && before == nil:
			before = p
		case p.PhotoType == domain.PhotoAfter && after == nil:
			after = p
		}
	}
	return before, after, nil
}

// Set returns the booking's canonical before/after pair; either side may
// be nil while the set is incomplete.
func (s *Service) Set(ctx context.Context, refOrID string) (*domain.Booking, *domain.Photo, *domain.Photo, error) {
	b, err := s.resolveBooking(ctx, refOrID)
	if err != nil {
		return nil, nil, nil, err
	}
	before, after, err := s.canonicalPair(ctx, b.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return b, before, after, nil
}
