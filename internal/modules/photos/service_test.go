package photos

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/pkg/mailer"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

type mockPhotoStore struct {
	photos []domain.Photo
}

func (m *mockPhotoStore) Create(ctx context.Context, p *domain.Photo) error {
	p.ID = int64(len(m.photos) + 1)
	// Newest first, matching the repository ordering.
	m.photos = append([]domain.Photo{*p}, m.photos...)
	return nil
}

func (m *mockPhotoStore) GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Photo, error) {
	out := make([]domain.Photo, 0, len(m.photos))
	for _, p := range m.photos {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockBookingStore struct {
	booking *domain.Booking
	claimed bool
}

func (m *mockBookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil || m.booking.ID != id {
		return nil, errors.New("not found")
	}
	return m.booking, nil
}

func (m *mockBookingStore) FindByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	if m.booking == nil || m.booking.BookingRef != ref {
		return nil, nil
	}
	return m.booking, nil
}

func (m *mockBookingStore) ClaimPhotosEmail(ctx context.Context, bookingID int64) (bool, error) {
	if m.claimed {
		return false, nil
	}
	m.claimed = true
	return true, nil
}

type mockCustomerStore struct{}

func (m *mockCustomerStore) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return &domain.Customer{ID: id, Name: "Jane Smith", Email: "jane@example.com"}, nil
}

type mockSender struct {
	sent []mailer.Message
}

func (m *mockSender) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func nopLogger(string, ...interface{}) {}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form.File["file"][0]
}

func testBooking() *domain.Booking {
	return &domain.Booking{ID: 1, CustomerID: 42, BookingRef: "TJ1756500000000", ServiceName: "Small Single-Storey Home (2-3 bed)"}
}

func newTestService(t *testing.T, bookings *mockBookingStore, mail *mockSender) (*Service, *mockPhotoStore) {
	t.Helper()
	store := &mockPhotoStore{}
	svc := NewService(store, bookings, &mockCustomerStore{}, mail, t.TempDir(), nopLogger)
	return svc, store
}

func TestUpload_BeforeOnlyDoesNotEmail(t *testing.T) {
	bookings := &mockBookingStore{booking: testBooking()}
	mail := &mockSender{}
	svc, _ := newTestService(t, bookings, mail)

	res, err := svc.Upload(context.Background(), "TJ1756500000000", "before", fileHeader(t, "b.png", pngBytes))
	if err != nil {
		t.Fatal(err)
	}
	if res.CompleteSet || res.SetSent || len(mail.sent) != 0 {
		t.Fatalf("incomplete set must not email, got %+v", res)
	}
	if res.Photo.PhotoType != domain.PhotoBefore {
		t.Fatalf("unexpected type %s", res.Photo.PhotoType)
	}
}

func TestUpload_CompletingSetEmailsOnce(t *testing.T) {
	bookings := &mockBookingStore{booking: testBooking()}
	mail := &mockSender{}
	svc, _ := newTestService(t, bookings, mail)

	if _, err := svc.Upload(context.Background(), "TJ1756500000000", "before", fileHeader(t, "b.png", pngBytes)); err != nil {
		t.Fatal(err)
	}
	res, err := svc.Upload(context.Background(), "TJ1756500000000", "after", fileHeader(t, "a.png", pngBytes))
	if err != nil {
		t.Fatal(err)
	}
	if !res.CompleteSet || !res.SetSent || len(mail.sent) != 1 {
		t.Fatalf("expected exactly one email, got %+v n=%d", res, len(mail.sent))
	}
	if len(mail.sent[0].Attachments) != 2 {
		t.Fatalf("expected two attachments, got %d", len(mail.sent[0].Attachments))
	}

	// A replacement upload must not trigger a second automatic send.
	res, err = svc.Upload(context.Background(), "TJ1756500000000", "after", fileHeader(t, "a2.png", pngBytes))
	if err != nil {
		t.Fatal(err)
	}
	if !res.CompleteSet || res.SetSent || len(mail.sent) != 1 {
		t.Fatalf("re-upload must not email again, got %+v n=%d", res, len(mail.sent))
	}
}

func TestUpload_NumericBookingID(t *testing.T) {
	bookings := &mockBookingStore{booking: testBooking()}
	svc, store := newTestService(t, bookings, &mockSender{})

	if _, err := svc.Upload(context.Background(), "1", "before", fileHeader(t, "b.png", pngBytes)); err != nil {
		t.Fatal(err)
	}
	if len(store.photos) != 1 {
		t.Fatal("expected photo stored")
	}
}

func TestUpload_Rejections(t *testing.T) {
	bookings := &mockBookingStore{booking: testBooking()}
	svc, _ := newTestService(t, bookings, &mockSender{})
	ctx := context.Background()

	if _, err := svc.Upload(ctx, "TJ1756500000000", "during", fileHeader(t, "b.png", pngBytes)); !errors.Is(err, ErrInvalidPhotoType) {
		t.Fatalf("expected ErrInvalidPhotoType, got %v", err)
	}
	if _, err := svc.Upload(ctx, "TJ999", "before", fileHeader(t, "b.png", pngBytes)); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.Upload(ctx, "TJ1756500000000", "before", fileHeader(t, "b.txt", []byte("just text, definitely not an image"))); !errors.Is(err, ErrInvalidMimeType) {
		t.Fatalf("expected ErrInvalidMimeType, got %v", err)
	}
	if _, err := svc.Upload(ctx, "TJ1756500000000", "before", &multipart.FileHeader{Filename: "big.png", Size: MaxFileSize + 1}); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestSet_CanonicalIsNewest(t *testing.T) {
	bookings := &mockBookingStore{booking: testBooking()}
	svc, _ := newTestService(t, bookings, &mockSender{})
	ctx := context.Background()

	if _, err := svc.Upload(ctx, "TJ1756500000000", "before", fileHeader(t, "b1.png", pngBytes)); err != nil {
		t.Fatal(err)
	}
	res, err := svc.Upload(ctx, "TJ1756500000000", "before", fileHeader(t, "b2.png", pngBytes))
	if err != nil {
		t.Fatal(err)
	}

	_, before, after, err := svc.Set(ctx, "TJ1756500000000")
	if err != nil {
		t.Fatal(err)
	}
	if after != nil {
		t.Fatal("no after photo was uploaded")
	}
	if before == nil || before.ID != res.Photo.ID {
		t.Fatalf("expected newest before photo to be canonical, got %+v", before)
	}
}

func TestResend(t *testing.T) {
	bookings := &mockBookingStore{booking: testBooking()}
	mail := &mockSender{}
	svc, _ := newTestService(t, bookings, mail)
	ctx := context.Background()

	if err := svc.Resend(ctx, "TJ1756500000000"); !errors.Is(err, ErrSetIncomplete) {
		t.Fatalf("expected ErrSetIncomplete, got %v", err)
	}

	if _, err := svc.Upload(ctx, "TJ1756500000000", "before", fileHeader(t, "b.png", pngBytes)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Upload(ctx, "TJ1756500000000", "after", fileHeader(t, "a.png", pngBytes)); err != nil {
		t.Fatal(err)
	}
	// Automatic send happened; explicit re-send still goes out.
	if err := svc.Resend(ctx, "TJ1756500000000"); err != nil {
		t.Fatal(err)
	}
	if len(mail.sent) != 2 {
		t.Fatalf("expected automatic + explicit send, got %d", len(mail.sent))
	}
}
