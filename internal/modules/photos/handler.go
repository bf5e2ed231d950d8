package photos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tidyjacks/internal/domain"
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
	rg.POST("/photos", h.Upload)
	rg.GET("/photos/:booking", h.GetSet)
	rg.POST("/photos/:booking/send", h.Resend)
}

func toPhotoResponse(ref string, p *domain.Photo) *PhotoResponse {
	if p == nil {
		return nil
	}
	return &PhotoResponse{
		ID:         p.ID,
		BookingID:  ref,
		PhotoType:  string(p.PhotoType),
		URL:        p.FileURL,
		CapturedAt: p.CapturedAt,
	}
}

// Upload godoc
// @Summary      Upload a before or after photo
// @Description  Stores the image and emails the customer once both shots exist
// @Tags         Photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId formData string true "TJ reference or numeric booking id"
// @Param        photoType formData string true "before or after"
// @Param        file formData file true "JPEG, PNG or WebP up to 10 MB"
// @Success      201 {object} UploadResponse
// @Failure      400,404,413 {object} ErrorResponse
// @Router       /admin/photos [post]
func (h *Handler) Upload(c *gin.Context) {
	refOrID := c.PostForm("bookingId")
	photoType := c.PostForm("photoType")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	res, err := h.service.Upload(c.Request.Context(), refOrID, photoType, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidPhotoType), errors.Is(err, ErrInvalidMimeType), errors.Is(err, ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.loggerf("level=error msg=photo upload failed booking=%s err=%v", refOrID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, UploadResponse{
		Photo:          *toPhotoResponse(refOrID, res.Photo),
		HasCompleteSet: res.CompleteSet,
		SetSent:        res.SetSent,
	})
}

// GetSet godoc
// @Summary      Get a booking's canonical before/after pair
// @Tags         Photos
// @Produce      json
// @Security     BearerAuth
// @Param        booking path string true "TJ reference or numeric booking id"
// @Success      200 {object} SetResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admin/photos/{booking} [get]
func (h *Handler) GetSet(c *gin.Context) {
	b, before, after, err := h.service.Set(c.Request.Context(), c.Param("booking"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, SetResponse{
		Before:         toPhotoResponse(b.BookingRef, before),
		After:          toPhotoResponse(b.BookingRef, after),
		HasCompleteSet: before != nil && after != nil,
	})
}

// Resend godoc
// @Summary      Re-send the before/after photo email
// @Tags         Photos
// @Produce      json
// @Security     BearerAuth
// @Param        booking path string true "TJ reference or numeric booking id"
// @Success      200 {object} map[string]bool
// @Failure      404,409 {object} ErrorResponse
// @Router       /admin/photos/{booking}/send [post]
func (h *Handler) Resend(c *gin.Context) {
	err := h.service.Resend(c.Request.Context(), c.Param("booking"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrSetIncomplete):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.loggerf("level=error msg=photo re-send failed booking=%s err=%v", c.Param("booking"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "send failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
