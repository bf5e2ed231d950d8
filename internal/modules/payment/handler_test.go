package payment

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v76"
)

func newWebhookRouter(gw *mockGateway, ledger *mockLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := NewService(gw, ledger, &mockReconciler{}, &mockSender{}, "biz@example.com", nopLogger)
	h := NewHandler(svc, nopLogger)
	r := gin.New()
	api := r.Group("/api")
	h.RegisterWebhookRoutes(api)
	return r
}

func TestWebhookEndpoint_RejectsOversizeBody(t *testing.T) {
	gw := &mockGateway{}
	ledger := &mockLedger{}
	r := newWebhookRouter(gw, ledger)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(make([]byte, maxWebhookBody+1)))
	req.Header.Set("Stripe-Signature", "sig")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", w.Code, w.Body.String())
	}
	if ledger.claimCalls != 0 || ledger.failureCalls != 0 {
		t.Fatal("an oversize body must not touch the ledger")
	}
}

func TestWebhookEndpoint_AcceptsLargeBodyWithinCap(t *testing.T) {
	gw := &mockGateway{event: stripe.Event{Type: "charge.refunded", Data: &stripe.EventData{Raw: []byte("{}")}}}
	r := newWebhookRouter(gw, &mockLedger{})

	req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(make([]byte, maxWebhookBody)))
	req.Header.Set("Stripe-Signature", "sig")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a body at the cap, got %d body=%s", w.Code, w.Body.String())
	}
}
