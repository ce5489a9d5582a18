package handler

import (
	"errors"
	"net/http"

	"github.com/DeniseL168/FinanceApp/internal/middleware"
	"github.com/DeniseL168/FinanceApp/internal/models"
	"github.com/DeniseL168/FinanceApp/internal/store"
	"github.com/DeniseL168/FinanceApp/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

// TransactionHandler serves the transaction routes.
type TransactionHandler struct {
	Transactions TransactionStore
}

func NewTransactionHandler(txs TransactionStore) *TransactionHandler {
	return &TransactionHandler{Transactions: txs}
}

// List returns all transactions owned by the authenticated user.
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	txs, err := h.Transactions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"transactions": txs})
}

type createTransactionReq struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Type        *string          `json:"type"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date"`
}

// Create stores a new transaction owned by the authenticated user.
// Each required field gets its own 400 message, checked in order.
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid transaction data")
		return
	}

	required := []struct {
		name    string
		present bool
	}{
		{"amount", req.Amount != nil},
		{"description", req.Description != nil},
		{"type", req.Type != nil},
		{"category", req.Category != nil},
		{"date", req.Date != nil},
	}
	for _, f := range required {
		if !f.present {
			util.Error(c, http.StatusBadRequest, f.name+" is required")
			return
		}
	}

	if err := util.ValidateAmount(*req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidateType(*req.Type); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidateDate(*req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount.String(),
		Type:        *req.Type,
		Category:    *req.Category,
		Description: *req.Description,
		Date:        *req.Date,
	}

	created, err := h.Transactions.Create(c.Request.Context(), tx)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"transaction": created})
}

// Update applies a partial-field merge to an existing transaction.
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	txID := c.Query("transaction_id")
	if txID == "" {
		util.Error(c, http.StatusBadRequest, "transaction_id is required")
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid transaction data")
		return
	}

	fields := bson.M{}
	if req.Amount != nil {
		if err := util.ValidateAmount(*req.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		fields["amount"] = req.Amount.String()
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		if err := util.ValidateType(*req.Type); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		fields["type"] = *req.Type
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Date != nil {
		if err := util.ValidateDate(*req.Date); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		fields["date"] = *req.Date
	}

	if len(fields) == 0 {
		util.Error(c, http.StatusBadRequest, "no fields to update")
		return
	}

	err := h.Transactions.Update(c.Request.Context(), userID, txID, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"message": "Transaction updated successfully"})
}

// Delete removes one transaction by id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	txID := c.Query("transaction_id")
	if txID == "" {
		util.Error(c, http.StatusBadRequest, "transaction_id is required")
		return
	}

	err := h.Transactions.Delete(c.Request.Context(), userID, txID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"success": true})
}
