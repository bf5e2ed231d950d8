package pricing

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// ServiceInfo is the public view of one catalog entry. The frontend renders
// prices from these fields; the amounts it sends back are never trusted.
type ServiceInfo struct {
	Code             string `json:"code" example:"small_home"`
	Name             string `json:"name" example:"Small Single-Storey Home (2-3 bed)"`
	PriceCents       int64  `json:"priceCents" example:"20000"`
	PriceLabel       string `json:"price" example:"$200"`
	DepositCents     int64  `json:"depositCents" example:"6000"`
	DepositAvailable bool   `json:"depositAvailable" example:"true"`
	Currency         string `json:"currency" example:"aud"`
}

// Services returns the whole catalog, cheapest first.
func Services() []ServiceInfo {
	out := make([]ServiceInfo, 0, len(catalog))
	for code, cents := range catalog {
		out = append(out, ServiceInfo{
			Code:             code,
			Name:             serviceNames[code],
			PriceCents:       cents,
			PriceLabel:       PriceLabel(code),
			DepositCents:     DepositCents(cents),
			DepositAvailable: DepositAvailable(code),
			Currency:         Currency,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PriceCents != out[j].PriceCents {
			return out[i].PriceCents < out[j].PriceCents
		}
		return out[i].Code < out[j].Code
	})
	return out
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
}

// ListServices godoc
// @Summary      Service catalog with prices and deposits
// @Tags         Pricing
// @Produce      json
// @Success      200 {array} ServiceInfo
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, Services())
}
