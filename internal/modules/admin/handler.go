package admin

import (
	"errors"
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
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/outstanding", h.ListOutstanding)
	rg.GET("/customers", h.ListCustomers)
	rg.PUT("/bookings/payment", h.UpdatePayment)
}

// Dashboard godoc
// @Summary      Business dashboard totals
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} DashboardResponse
// @Router       /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.loggerf("level=error msg=dashboard query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBookings godoc
// @Summary      All bookings with customer details
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} BookingRow
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	rows, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.loggerf("level=error msg=booking listing failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListOutstanding godoc
// @Summary      Bookings with money still owing
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} BookingRow
// @Router       /admin/bookings/outstanding [get]
func (h *Handler) ListOutstanding(c *gin.Context) {
	rows, err := h.service.ListOutstanding(c.Request.Context())
	if err != nil {
		h.loggerf("level=error msg=outstanding listing failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListCustomers godoc
// @Summary      All customers
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} CustomerRow
// @Router       /admin/customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	rows, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		h.loggerf("level=error msg=customer listing failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UpdatePayment godoc
// @Summary      Manually correct a booking's payment record
// @Description  Status is re-derived from the paid amount; failed/refunded are explicit overrides
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body UpdatePaymentRequest true "Correction"
// @Success      200 {object} map[string]interface{}
// @Failure      400,404 {object} ErrorResponse
// @Router       /admin/bookings/payment [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.service.UpdatePayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.loggerf("level=error msg=payment update failed ref=%s err=%v", req.BookingID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookingId":       b.BookingRef,
		"paymentStatus":   b.PaymentStatus,
		"amountPaidCents": b.AmountPaidCents,
		"remainingCents":  b.RemainingBalanceCents(),
	})
}
