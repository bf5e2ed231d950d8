package payment

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreateIntent)
}

func (h *Handler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhook", h.Webhook)
}

// CreateIntent godoc
// @Summary      Create a Stripe payment intent
// @Description  Charges the server-side price for the requested service; client amounts are ignored
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body CreateIntentRequest true "Intent request"
// @Success      200 {object} CreateIntentResponse
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /create-payment-intent [post]
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loggerf("level=error msg=invalid intent payload err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		h.loggerf("level=error msg=intent creation failed service=%s err=%v", req.BookingData.Service, err)
		switch {
		case errors.Is(err, ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not available"})
		case errors.Is(err, ErrProviderUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// maxWebhookBody caps the raw payload read; Stripe events carrying large
// objects can approach a megabyte.
const maxWebhookBody = 1 << 20

// Webhook godoc
// @Summary      Stripe webhook receiver
// @Description  Verifies the Stripe-Signature header over the raw body before acting on the event
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]bool
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Router       /webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body must
	// be read raw, never through JSON binding. A truncated body would fail
	// signature verification on every redelivery, so oversize payloads are
	// rejected outright instead of silently cut.
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	if len(payload) > maxWebhookBody {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
		// A 500 makes Stripe redeliver; the claim ledger makes the retry
		// safe.
		h.loggerf("level=error msg=webhook processing error err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
