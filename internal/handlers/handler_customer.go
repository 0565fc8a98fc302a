package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/middleware"
)

// customerHandler handles HTTP requests for customer master data.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// RegisterCustomerRoutes wires the customer endpoints.
func RegisterCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	rg.POST("/add-customer", h.addCustomer)
	rg.PUT("/edit-customer/:customerId", h.editCustomer)
	rg.GET("/get-all-customer", h.getAllCustomers)
	rg.GET("/get-one-customer/:customerId", h.getOneCustomer)
	rg.PUT("/update-customer-status/:customerId", h.updateCustomerStatus)
	rg.GET("/get-customer-transaction/:customerId", h.getCustomerTransactions)
	rg.GET("/get-one-customer-history/:customerId", h.getCustomerHistory)
}

// addCustomer godoc
// @Summary Create a customer
// @Description Validates, duplicate-checks and persists a new customer with its account, opening balance and history.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} MessageResponse "Validation messages"
// @Failure 409 {object} MessageResponse "Duplicate field messages"
// @Failure 500 {object} MessageResponse
// @Security BearerAuth
// @Router /add-customer [post]
func (h *customerHandler) addCustomer(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, customer)
}

// editCustomer godoc
// @Summary Edit a customer
// @Description Applies a field-level patch and keeps the companion account and opening balance in sync.
// @Tags customers
// @Accept json
// @Produce json
// @Param customerId path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Security BearerAuth
// @Router /edit-customer/{customerId} [put]
func (h *customerHandler) editCustomer(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), organizationID, c.Param("customerId"), req, userID)
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// getAllCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Customer
// @Security BearerAuth
// @Router /get-all-customer [get]
func (h *customerHandler) getAllCustomers(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), organizationID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// getOneCustomer godoc
// @Summary Get one customer
// @Tags customers
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-one-customer/{customerId} [get]
func (h *customerHandler) getOneCustomer(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), organizationID, c.Param("customerId"))
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// updateCustomerStatus godoc
// @Summary Update customer status
// @Description Flips the customer between Active and Inactive and records history.
// @Tags customers
// @Accept json
// @Produce json
// @Param customerId path string true "Customer ID"
// @Param status body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /update-customer-status/{customerId} [put]
func (h *customerHandler) updateCustomerStatus(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.customerService.UpdateCustomerStatus(c.Request.Context(), organizationID, c.Param("customerId"), req.Status, userID); err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Customer status updated successfully"})
}

// getCustomerTransactions godoc
// @Summary List a customer's ledger postings
// @Tags customers
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} domain.TrialBalance
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-customer-transaction/{customerId} [get]
func (h *customerHandler) getCustomerTransactions(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	transactions, err := h.customerService.GetCustomerTransactions(c.Request.Context(), organizationID, c.Param("customerId"))
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// getCustomerHistory godoc
// @Summary List a customer's audit trail
// @Tags customers
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} domain.History
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-one-customer-history/{customerId} [get]
func (h *customerHandler) getCustomerHistory(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	history, err := h.customerService.GetCustomerHistory(c.Request.Context(), organizationID, c.Param("customerId"))
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, history)
}
