package booking

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(store *mockBookingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := newTestService(store, &mockVerifier{}, &mockSender{})
	h := NewHandler(svc, nopLogger)
	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEndpoint_SlotFieldAndSuccessFlag(t *testing.T) {
	store := &mockBookingStore{}
	r := newTestRouter(store)

	// No phone, free-form slot: both are optional on the wire.
	body := `{"name":"Jane Smith","email":"jane@example.com","address":"12 Beach Rd, Cronulla NSW",
		"service":"small_home","date":"2026-09-14","slot":"any weekday really"}`
	w := postJSON(r, "/api/booking", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("expected success flag in response, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"bookingId":"TJ`) {
		t.Fatalf("expected booking reference in response, got %s", w.Body.String())
	}
	if got := store.created[0].TimeSlot; got != "any weekday really" {
		t.Fatalf("expected free-form slot stored, got %q", got)
	}
}

func TestCreateEndpoint_PluralAlias(t *testing.T) {
	r := newTestRouter(&mockBookingStore{})

	body := `{"name":"Jane Smith","email":"jane@example.com","address":"12 Beach Rd, Cronulla NSW",
		"service":"small_home","date":"2026-09-14"}`
	if w := postJSON(r, "/api/bookings", body); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on plural alias, got %d body=%s", w.Code, w.Body.String())
	}
}
