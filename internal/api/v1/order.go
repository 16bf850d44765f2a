package v1

import (
	"net/http"

	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service service.OrderService
	logger  *logger.Logger
}

func NewOrderHandler(service service.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

// @Summary Get order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	resp, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
