package v1

import (
	"net/http"

	"github.com/flexprice/storefront/internal/domain/tax"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	service service.TaxService
	logger  *logger.Logger
}

func NewTaxHandler(service service.TaxService, logger *logger.Logger) *TaxHandler {
	return &TaxHandler{service: service, logger: logger}
}

// @Summary Calculate tax
// @Description Resolve currency, VAT rate and totals for a base amount in minor units. Unknown or missing countries fall back to USD without tax.
// @Tags Tax
// @Produce json
// @Param amount query int true "Base amount in minor currency units"
// @Param country query string false "ISO-3166 alpha-2 country code or country name"
// @Success 200 {object} dto.TaxCalculationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /tax/calculate [get]
func (h *TaxHandler) Calculate(c *gin.Context) {
	amount, err := tax.ParseAmount(c.Query("amount"))
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), c.Query("country"), amount)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Calculate tax for a user
// @Description Resolve tax for a base amount using the country stored on the user profile
// @Tags Tax
// @Produce json
// @Param id path string true "User ID"
// @Param amount query int true "Base amount in minor currency units"
// @Success 200 {object} dto.TaxCalculationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/tax [get]
func (h *TaxHandler) CalculateForUser(c *gin.Context) {
	amount, err := tax.ParseAmount(c.Query("amount"))
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.CalculateForUser(c.Request.Context(), c.Param("id"), amount)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get country tax info
// @Description Get membership, currency and VAT rate of a country
// @Tags Tax
// @Produce json
// @Param country path string true "ISO-3166 alpha-2 country code or country name"
// @Success 200 {object} dto.CountryTaxInfoResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /tax/countries/{country} [get]
func (h *TaxHandler) GetCountryInfo(c *gin.Context) {
	resp, err := h.service.GetCountryInfo(c.Request.Context(), c.Param("country"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List VAT rates
// @Description List the standard VAT rate of every EU member state
// @Tags Tax
// @Produce json
// @Success 200 {object} dto.ListTaxRatesResponse
// @Router /tax/rates [get]
func (h *TaxHandler) ListRates(c *gin.Context) {
	resp, err := h.service.ListRates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
