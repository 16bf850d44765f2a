package v1

import (
	"net/http"

	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	service service.PriceService
	logger  *logger.Logger
}

func NewPriceHandler(service service.PriceService, logger *logger.Logger) *PriceHandler {
	return &PriceHandler{service: service, logger: logger}
}

// @Summary List products
// @Description List active products priced with tax for a country. Without a country the X-Country header is used.
// @Tags Products
// @Produce json
// @Param country query string false "Billing country"
// @Success 200 {object} dto.ListProductPricesResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *PriceHandler) ListProductPrices(c *gin.Context) {
	resp, err := h.service.ListProductPrices(c.Request.Context(), c.Query("country"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get product price
// @Description Get one product, by ID or slug, priced with tax for a country
// @Tags Products
// @Produce json
// @Param id path string true "Product ID or slug"
// @Param country query string false "Billing country"
// @Success 200 {object} dto.ProductPriceResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/price [get]
func (h *PriceHandler) GetProductPrice(c *gin.Context) {
	resp, err := h.service.GetProductPrice(c.Request.Context(), c.Param("id"), c.Query("country"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
