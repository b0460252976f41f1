package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/models"
	"kwarta/internal/pagination"
	"kwarta/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the transaction creation payload.
// Amount is signed by convention: negative values are the usual way to
// record expenses, but the type field decides the balance effect.
type CreateTransactionRequest struct {
	WalletID    string     `json:"wallet_id" binding:"required,uuid"`
	CategoryID  *string    `json:"category_id" binding:"omitempty,uuid"`
	Type        string     `json:"type" binding:"required,transaction_type"`
	Amount      float64    `json:"amount" binding:"required"`
	Description string     `json:"description" binding:"omitempty,max=255"`
	Date        *time.Time `json:"date"`
	Notes       string     `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the transaction update payload
type UpdateTransactionRequest struct {
	Description string  `json:"description" binding:"omitempty,max=255"`
	Notes       string  `json:"notes" binding:"omitempty,max=1000"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
}

// transactionListQuery holds the list endpoint's query parameters
type transactionListQuery struct {
	pagination.PageRequest
	From       string `form:"from"`
	To         string `form:"to"`
	Type       string `form:"type" binding:"omitempty,transaction_type"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	WalletID   string `form:"wallet_id" binding:"omitempty,uuid"`
}

// CreateTransaction records a transaction
// @Summary     Create a transaction
// @Description Record an income or expense transaction in a wallet
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction data"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Wallet or category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	tx, err := h.transactionService.CreateTransaction(userID, req.WalletID, req.CategoryID, models.TransactionType(req.Type), req.Amount, req.Description, date, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GetTransactions lists the user's transactions
// @Summary     List transactions
// @Description Get a paginated transaction list, filterable by date range, type, category, and wallet
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       from        query string false "Start date (RFC 3339)"
// @Param       to          query string false "End date (RFC 3339)"
// @Param       type        query string false "Transaction type (income|expense)"
// @Param       category_id query string false "Category ID"
// @Param       wallet_id   query string false "Wallet ID"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query transactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := buildTransactionFilter(query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func buildTransactionFilter(query transactionListQuery) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if query.From != "" {
		from, err := time.Parse(time.RFC3339, query.From)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date")
		}
		filter.FromDate = &from
	}
	if query.To != "" {
		to, err := time.Parse(time.RFC3339, query.To)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date")
		}
		filter.ToDate = &to
	}
	if query.Type != "" {
		txType := models.TransactionType(query.Type)
		filter.Type = &txType
	}
	if query.CategoryID != "" {
		filter.CategoryID = &query.CategoryID
	}
	if query.WalletID != "" {
		filter.WalletID = &query.WalletID
	}

	return filter, nil
}

// GetTransaction returns a single transaction
// @Summary     Get a transaction
// @Description Get one transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// UpdateTransaction updates a transaction's descriptive fields
// @Summary     Update a transaction
// @Description Update description, notes, or category. Amount, type, date, and wallet are immutable.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.UpdateTransaction(userID, transactionID, req.Description, req.Notes, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction deletes a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction and reverse its wallet balance effect
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
