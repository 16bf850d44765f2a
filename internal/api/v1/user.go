package v1

import (
	"net/http"

	"github.com/flexprice/storefront/internal/api/dto"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService  service.UserService
	orderService service.OrderService
	logger       *logger.Logger
}

func NewUserHandler(userService service.UserService, orderService service.OrderService, logger *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, orderService: orderService, logger: logger}
}

// @Summary Register user
// @Description Register a customer. The country cannot be changed afterwards.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	resp, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List user orders
// @Description List the orders of a user, newest first
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/orders [get]
func (h *UserHandler) ListOrders(c *gin.Context) {
	resp, err := h.orderService.ListUserOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
