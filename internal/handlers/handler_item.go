package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/middleware"
)

// itemHandler handles HTTP requests for the item master.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes wires the item endpoints.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	rg.POST("/add-item", h.addItem)
	rg.PUT("/edit-item/:itemId", h.editItem)
	rg.GET("/get-all-item", h.getAllItems)
	rg.GET("/get-all-item-xs", h.getAllItemsXS)
	rg.GET("/get-all-item-m", h.getAllItemsM)
	rg.GET("/get-one-item/:itemId", h.getOneItem)
	rg.PUT("/update-item-status/:itemId", h.updateItemStatus)
	rg.DELETE("/delete-item/:itemId", h.deleteItem)
}

// addItem godoc
// @Summary Create an item
// @Description Validates and persists a new item, writing its opening-stock ledger row when declared.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} domain.Item
// @Failure 400 {object} MessageResponse "Validation messages"
// @Failure 409 {object} MessageResponse "Duplicate name"
// @Security BearerAuth
// @Router /add-item [post]
func (h *itemHandler) addItem(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, item)
}

// editItem godoc
// @Summary Edit an item
// @Description Applies a field-level patch and overwrites the opening-stock row to match.
// @Tags items
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} domain.Item
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Security BearerAuth
// @Router /edit-item/{itemId} [put]
func (h *itemHandler) editItem(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), organizationID, c.Param("itemId"), req, userID)
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

// getAllItems godoc
// @Summary List items
// @Tags items
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Item
// @Security BearerAuth
// @Router /get-all-item [get]
func (h *itemHandler) getAllItems(c *gin.Context) {
	items, ok := h.listItems(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, items)
}

// getAllItemsXS godoc
// @Summary List items, minimal projection
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemXSResponse
// @Security BearerAuth
// @Router /get-all-item-xs [get]
func (h *itemHandler) getAllItemsXS(c *gin.Context) {
	items, ok := h.listItems(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToItemXSResponses(items))
}

// getAllItemsM godoc
// @Summary List items, medium projection
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemMResponse
// @Security BearerAuth
// @Router /get-all-item-m [get]
func (h *itemHandler) getAllItemsM(c *gin.Context) {
	items, ok := h.listItems(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToItemMResponses(items))
}

// listItems handles the shared identity check, pagination binding and fetch
// behind the three listing projections.
func (h *itemHandler) listItems(c *gin.Context) ([]domain.Item, bool) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return nil, false
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return nil, false
	}

	items, err := h.itemService.ListItems(c.Request.Context(), organizationID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Item not found")
		return nil, false
	}
	return items, true
}

// getOneItem godoc
// @Summary Get one item with its current stock
// @Tags items
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /get-one-item/{itemId} [get]
func (h *itemHandler) getOneItem(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	item, stock, err := h.itemService.GetItemByID(c.Request.Context(), organizationID, c.Param("itemId"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, dto.ItemResponse{Item: *item, CurrentStock: stock})
}

// updateItemStatus godoc
// @Summary Update item status
// @Tags items
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param status body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /update-item-status/{itemId} [put]
func (h *itemHandler) updateItemStatus(c *gin.Context) {
	userID, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.itemService.UpdateItemStatus(c.Request.Context(), organizationID, c.Param("itemId"), req.Status, userID); err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item status updated successfully"})
}

// deleteItem godoc
// @Summary Delete an item
// @Description Removes an item that has no transactions beyond its opening-stock row.
// @Tags items
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Item has transactions"
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /delete-item/{itemId} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	_, organizationID, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), organizationID, c.Param("itemId")); err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}
