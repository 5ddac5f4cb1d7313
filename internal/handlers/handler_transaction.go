package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	importService portssvc.ImportReaderSvc
}

func registerTransactionRoutes(rg *gin.RouterGroup, svc portssvc.ImportReaderSvc) {
	h := &transactionHandler{importService: svc}
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary List imported transactions
// @Description Returns the caller's transactions, newest first, one page at a time
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (1-200)" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	txns, next, err := h.importService.ListTransactions(c.Request.Context(), ownerID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, next))
}
