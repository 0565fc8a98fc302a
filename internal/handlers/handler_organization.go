package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/middleware"
)

// organizationHandler handles tenant, settings and reference-data requests.
type organizationHandler struct {
	orgService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{orgService: os}
}

// registerOrganizationRoutes wires the organization, settings and reference
// endpoints.
func registerOrganizationRoutes(rg *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)

	rg.POST("/organizations", h.createOrganization)
	rg.GET("/organizations/:id", h.getOrganization)
	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/tax-rates", h.listTaxRates)
}

// createOrganization godoc
// @Summary Create an organization
// @Description Creates a tenant, seeds its base currency and default settings.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} domain.Organization
// @Failure 400 {object} MessageResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Organization not found")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Organization created", slog.String("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, org)
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} domain.Organization
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	org, err := h.orgService.GetOrganizationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Organization not found")
		return
	}
	c.JSON(http.StatusOK, org)
}

// getSettings godoc
// @Summary Get the organization settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *organizationHandler) getSettings(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	settings, err := h.orgService.GetSettings(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err, "Settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Update the organization settings
// @Description Applies a field-level patch to the policy toggles, HSN config, opening-stock date and lookup sets.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *organizationHandler) updateSettings(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	settings, err := h.orgService.UpdateSettings(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondError(c, err, "Settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// listCurrencies godoc
// @Summary List the organization's currencies
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Currency
// @Security BearerAuth
// @Router /currencies [get]
func (h *organizationHandler) listCurrencies(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	currencies, err := h.orgService.ListCurrencies(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err, "Currency not found")
		return
	}
	c.JSON(http.StatusOK, currencies)
}

// listTaxRates godoc
// @Summary List the organization's tax rates
// @Tags reference
// @Produce json
// @Success 200 {array} domain.TaxRate
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *organizationHandler) listTaxRates(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	rates, err := h.orgService.ListTaxRates(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err, "Tax rate not found")
		return
	}
	c.JSON(http.StatusOK, rates)
}
