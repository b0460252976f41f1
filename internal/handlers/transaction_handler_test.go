package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/models"
	"kwarta/internal/pagination"
	"kwarta/internal/services"
)

type mockTransactionService struct {
	createTransactionFn   func(userID, walletID string, categoryID *string, transactionType models.TransactionType, amount float64, description string, date time.Time, notes string) (*models.Transaction, error)
	getUserTransactionsFn func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn  func(userID, transactionID string) (*models.Transaction, error)
	updateTransactionFn   func(userID, transactionID, description, notes string, categoryID *string) (*models.Transaction, error)
	deleteTransactionFn   func(userID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(userID, walletID string, categoryID *string, transactionType models.TransactionType, amount float64, description string, date time.Time, notes string) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, walletID, categoryID, transactionType, amount, description, date, notes)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	return &pagination.PageResponse[models.Transaction]{Data: []models.Transaction{}}, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID, description, notes string, categoryID *string) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, description, notes, categoryID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

const testTransactionID = "0191a6a0-0000-7000-8000-00000000cc01"

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := injectUserID(testUserID)
	r.POST("/transactions", auth, handler.CreateTransaction)
	r.GET("/transactions", auth, handler.GetTransactions)
	r.GET("/transactions/:id", auth, handler.GetTransaction)
	r.PUT("/transactions/:id", auth, handler.UpdateTransaction)
	r.DELETE("/transactions/:id", auth, handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID, walletID string, _ *string, transactionType models.TransactionType, amount float64, description string, _ time.Time, _ string) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: testTransactionID},
					UserID:      userID,
					WalletID:    walletID,
					Type:        transactionType,
					Amount:      amount,
					Description: description,
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		body := `{"wallet_id":"` + testWalletID + `","type":"expense","amount":-1200.50,"description":"Groceries"}`
		rec := doRequest(r, "POST", "/transactions", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["amount"].(float64) != -1200.50 {
			t.Errorf("expected amount -1200.50, got %v", result["amount"])
		}
		if result["type"] != "expense" {
			t.Errorf("expected type expense, got %v", result["type"])
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		body := `{"wallet_id":"` + testWalletID + `","type":"transfer","amount":100}`
		rec := doRequest(r, "POST", "/transactions", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed category id", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		body := `{"wallet_id":"` + testWalletID + `","type":"expense","amount":-100,"category_id":"food"}`
		rec := doRequest(r, "POST", "/transactions", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when wallet not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_, _ string, _ *string, _ models.TransactionType, _ float64, _ string, _ time.Time, _ string) (*models.Transaction, error) {
				return nil, apperrors.ErrWalletNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		body := `{"wallet_id":"` + testWalletID + `","type":"income","amount":100}`
		rec := doRequest(r, "POST", "/transactions", body)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters to the service", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter = filter
				return &pagination.PageResponse[models.Transaction]{Data: []models.Transaction{}}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET",
			"/transactions?type=expense&wallet_id="+testWalletID+"&from=2026-01-01T00:00:00Z&to=2026-01-31T23:59:59Z", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeExpense {
			t.Error("expected expense type filter")
		}
		if gotFilter.WalletID == nil || *gotFilter.WalletID != testWalletID {
			t.Error("expected wallet filter")
		}
		if gotFilter.FromDate == nil || gotFilter.FromDate.Month() != time.January {
			t.Error("expected January from date")
		}
		if gotFilter.ToDate == nil {
			t.Error("expected to date")
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?from=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown type filter", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=refund", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(_, _ string) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
