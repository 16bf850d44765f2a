package v1

import (
	"net/http"

	"github.com/flexprice/storefront/internal/api/dto"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/service"
	"github.com/flexprice/storefront/internal/types"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service service.CheckoutService
	logger  *logger.Logger
}

func NewCheckoutHandler(service service.CheckoutService, logger *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: service, logger: logger}
}

// @Summary Preview checkout
// @Description Price a cart with tax. When user_id is set the country of the user profile is used.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.CheckoutPreviewRequest true "Cart"
// @Success 200 {object} dto.CheckoutPreviewResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req dto.CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create payment intent
// @Description Price a cart, create an order and prepare the charge with the payment provider. Repeating a request with the same Idempotency-Key returns the first response.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body dto.CreatePaymentIntentRequest true "Cart"
// @Success 201 {object} dto.PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /checkout/payment-intent [post]
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = c.GetHeader(types.HeaderIdempotencyKey)
	}

	resp, err := h.service.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
