package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// treasuryHandler handles the ledger, starting balance and balance endpoints.
type treasuryHandler struct {
	treasuryService portssvc.TreasurySvcFacade
}

func newTreasuryHandler(ts portssvc.TreasurySvcFacade) *treasuryHandler {
	return &treasuryHandler{treasuryService: ts}
}

func registerTreasuryRoutes(rg *gin.RouterGroup, treasuryService portssvc.TreasurySvcFacade) {
	h := newTreasuryHandler(treasuryService)

	treasury := rg.Group("/treasury")
	{
		treasury.GET("/balance", h.getBalance)
		treasury.GET("/starting-balance", h.getStartingBalance)
		treasury.PUT("/starting-balance", h.setStartingBalance)
		treasury.POST("/transactions", h.createTransaction)
		treasury.GET("/transactions", h.listTransactions)
		treasury.GET("/transactions/export", h.exportTransactions)
		treasury.GET("/transactions/:id", h.getTransaction)
		treasury.PUT("/transactions/:id", h.updateTransaction)
		treasury.DELETE("/transactions/:id", h.deleteTransaction)
	}
}

// respondServiceError maps service errors to HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// getBalance godoc
// @Summary Get the current treasury balance
// @Description Computes starting balance plus the signed sum of all ledger entries.
// @Tags treasury
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/balance [get]
func (h *treasuryHandler) getBalance(c *gin.Context) {
	summary, err := h.treasuryService.GetBalance(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(summary))
}

// getStartingBalance godoc
// @Summary Get the starting balance record
// @Tags treasury
// @Produce json
// @Success 200 {object} dto.StartingBalanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/starting-balance [get]
func (h *treasuryHandler) getStartingBalance(c *gin.Context) {
	sb, err := h.treasuryService.GetStartingBalance(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load starting balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToStartingBalanceResponse(sb))
}

// setStartingBalance godoc
// @Summary Set the starting balance
// @Description Creates or replaces the single starting-balance record.
// @Tags treasury
// @Accept json
// @Produce json
// @Param body body dto.SetStartingBalanceRequest true "Starting balance"
// @Success 200 {object} dto.StartingBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/starting-balance [put]
func (h *treasuryHandler) setStartingBalance(c *gin.Context) {
	var req dto.SetStartingBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sb, err := h.treasuryService.SetStartingBalance(c.Request.Context(), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to set starting balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToStartingBalanceResponse(sb))
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Tags treasury
// @Accept json
// @Produce json
// @Param body body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/transactions [post]
func (h *treasuryHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.treasuryService.CreateTransaction(c.Request.Context(), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Tags treasury
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/transactions [get]
func (h *treasuryHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.treasuryService.ListTransactions(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// exportTransactions godoc
// @Summary Export the full ledger as CSV
// @Description Full ledger plus a balance footer fed from the same computation
// as the balance endpoint.
// @Tags treasury
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/transactions/export [get]
func (h *treasuryHandler) exportTransactions(c *gin.Context) {
	summary, err := h.treasuryService.GetBalance(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to export transactions")
		return
	}
	txns, err := h.treasuryService.ListAllTransactions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to export transactions")
		return
	}

	filename := fmt.Sprintf("ledger-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"transaction_id", "date", "type", "amount", "category", "description", "event_id", "recorded_by"})
	for i := range txns {
		t := &txns[i]
		eventID := ""
		if t.EventID != nil {
			eventID = *t.EventID
		}
		_ = w.Write([]string{
			t.TransactionID,
			t.TransactionDate.Format("2006-01-02"),
			string(t.Type),
			t.Amount.Round(2).StringFixed(2),
			t.Category,
			t.Description,
			eventID,
			t.RecordedBy,
		})
	}

	// Balance footer, same computation as the balance endpoint.
	_ = w.Write([]string{"starting_balance", "", "", summary.StartingBalance.Round(2).StringFixed(2)})
	_ = w.Write([]string{"transactions_total", "", "", summary.TransactionsTotal.Round(2).StringFixed(2)})
	_ = w.Write([]string{"current_balance", "", "", summary.CurrentBalance.Round(2).StringFixed(2)})
	w.Flush()
}

// getTransaction godoc
// @Summary Get one ledger entry
// @Tags treasury
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/transactions/{id} [get]
func (h *treasuryHandler) getTransaction(c *gin.Context) {
	txn, err := h.treasuryService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to load transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a ledger entry
// @Tags treasury
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param body body dto.UpdateTransactionRequest true "Changes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/transactions/{id} [put]
func (h *treasuryHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.treasuryService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags treasury
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasury/transactions/{id} [delete]
func (h *treasuryHandler) deleteTransaction(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.treasuryService.DeleteTransaction(c.Request.Context(), c.Param("id"), callerUserID); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
