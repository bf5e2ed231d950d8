package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tidyjacks/internal/modules/payment"
	"tidyjacks/internal/modules/pricing"
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
	rg.POST("/booking", h.Create)
	// Plural alias for REST-styled clients.
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:ref", h.GetByRef)
}

// Create godoc
// @Summary      Submit a booking
// @Description  Validates the form, verifies any attached payment intent and emails both parties
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        body body CreateBookingRequest true "Booking form"
// @Success      201 {object} BookingResponse
// @Failure      400 {object} ErrorResponse
// @Failure      402 {object} ErrorResponse
// @Router       /booking [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loggerf("level=error msg=invalid booking payload err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation), errors.Is(err, pricing.ErrUnknownService):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrPaymentNotCompleted),
			errors.Is(err, payment.ErrAmountMismatch),
			errors.Is(err, payment.ErrCurrencyMismatch):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not available"})
		case errors.Is(err, payment.ErrProviderUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		default:
			h.loggerf("level=error msg=booking creation failed err=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, toResponse(b))
}

// GetByRef godoc
// @Summary      Look up a booking by reference
// @Tags         Bookings
// @Produce      json
// @Param        ref path string true "Booking reference, e.g. TJ1756500000000"
// @Success      200 {object} BookingResponse
// @Failure      404 {object} ErrorResponse
// @Router       /bookings/{ref} [get]
func (h *Handler) GetByRef(c *gin.Context) {
	b, err := h.service.GetByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toResponse(b))
}
