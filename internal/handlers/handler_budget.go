package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cashmap/internal/core/domain"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, svc portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: svc}

	budget := rg.Group("/budget")
	{
		budget.GET("/items", h.listItems)
		budget.POST("/items", h.createItem)
		budget.GET("/waterfall", h.getWaterfall)
	}
}

// createItem godoc
// @Summary Add a budget item
// @Tags budget
// @Accept json
// @Produce json
// @Param item body dto.CreateBudgetItemRequest true "Budget item"
// @Success 201 {object} dto.BudgetItemResponse
// @Failure 400 {object} map[string]string "Invalid item"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budget/items [post]
func (h *budgetHandler) createItem(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var req dto.CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	item, err := h.budgetService.CreateBudgetItem(c.Request.Context(), req, ownerID)
	if err != nil {
		respondError(c, err, "Failed to create budget item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetItemResponse(item))
}

// listItems godoc
// @Summary List budget items
// @Tags budget
// @Produce json
// @Success 200 {array} dto.BudgetItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budget/items [get]
func (h *budgetHandler) listItems(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	items, err := h.budgetService.ListBudgetItems(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to list budget items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetItemResponse(items))
}

// getWaterfall godoc
// @Summary Budget waterfall
// @Description Normalises every budget item to the requested period and cascades income through the sections
// @Tags budget
// @Produce json
// @Param period query string false "WEEKLY, FORTNIGHTLY or MONTHLY" default(FORTNIGHTLY)
// @Success 200 {object} domain.Waterfall
// @Failure 400 {object} map[string]string "Unknown period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budget/waterfall [get]
func (h *budgetHandler) getWaterfall(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var params dto.WaterfallParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	period := domain.BudgetPeriod(strings.ToUpper(strings.TrimSpace(params.Period)))

	waterfall, err := h.budgetService.GetWaterfall(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, err, "Failed to build waterfall")
		return
	}
	c.JSON(http.StatusOK, waterfall)
}
