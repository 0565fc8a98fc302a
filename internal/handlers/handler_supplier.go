package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/middleware"
)

// supplierHandler handles HTTP requests for supplier master data.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes wires the supplier endpoints.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	rg.POST("/add-suppliers", h.addSupplier)
	rg.PUT("/update-supplier/:supplierId", h.updateSupplier)
	rg.GET("/get-all-suppliers", h.getAllSuppliers)
	rg.GET("/get-one-supplier/:supplierId", h.getOneSupplier)
	rg.PUT("/update-supplier-status/:supplierId", h.updateSupplierStatus)
	rg.GET("/get-supplier-transaction/:supplierId", h.getSupplierTransactions)
	rg.GET("/get-one-supplier-history/:supplierId", h.getSupplierHistory)
}

// addSupplier godoc
// @Summary Create a supplier
// @Description Validates, duplicate-checks and persists a new supplier with its account, opening balance and history.
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} domain.Supplier
// @Failure 400 {object} MessageResponse "Validation messages"
// @Failure 409 {object} MessageResponse "Duplicate field messages"
// @Security BearerAuth
// @Router /add-suppliers [post]
func (h *supplierHandler) addSupplier(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondError(c, err, "Supplier not found")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	c.JSON(http.StatusCreated, supplier)
}

// updateSupplier godoc
// @Summary Update a supplier
// @Description Applies a field-level patch. A display-name change renames every account carrying the old name.
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} domain.Supplier
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Security BearerAuth
// @Router /update-supplier/{supplierId} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), organizationID, c.Param("supplierId"), req, userID)
	if err != nil {
		respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// getAllSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Supplier
// @Security BearerAuth
// @Router /get-all-suppliers [get]
func (h *supplierHandler) getAllSuppliers(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), organizationID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// getOneSupplier godoc
// @Summary Get one supplier
// @Tags suppliers
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-one-supplier/{supplierId} [get]
func (h *supplierHandler) getOneSupplier(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), organizationID, c.Param("supplierId"))
	if err != nil {
		respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// updateSupplierStatus godoc
// @Summary Update supplier status
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Param status body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /update-supplier-status/{supplierId} [put]
func (h *supplierHandler) updateSupplierStatus(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.supplierService.UpdateSupplierStatus(c.Request.Context(), organizationID, c.Param("supplierId"), req.Status, userID); err != nil {
		respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Supplier status updated successfully"})
}

// getSupplierTransactions godoc
// @Summary List a supplier's ledger postings
// @Tags suppliers
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {array} domain.TrialBalance
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-supplier-transaction/{supplierId} [get]
func (h *supplierHandler) getSupplierTransactions(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	transactions, err := h.supplierService.GetSupplierTransactions(c.Request.Context(), organizationID, c.Param("supplierId"))
	if err != nil {
		respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// getSupplierHistory godoc
// @Summary List a supplier's audit trail
// @Tags suppliers
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {array} domain.History
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-one-supplier-history/{supplierId} [get]
func (h *supplierHandler) getSupplierHistory(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	history, err := h.supplierService.GetSupplierHistory(c.Request.Context(), organizationID, c.Param("supplierId"))
	if err != nil {
		respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, history)
}
