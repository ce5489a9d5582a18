package handler

import (
	"net/http"
	"testing"

	"github.com/DeniseL168/FinanceApp/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTxApp(userID string, txs *fakeTransactions) *gin.Engine {
	h := NewTransactionHandler(txs)
	r := gin.New()
	r.Use(asUser(userID))
	r.GET("/transactions", h.List)
	r.POST("/transaction", h.Create)
	r.PUT("/transaction", h.Update)
	r.DELETE("/transaction", h.Delete)
	return r
}

func validTxBody() map[string]interface{} {
	return map[string]interface{}{
		"amount":      100.0,
		"description": "salary",
		"type":        "income",
		"category":    "work",
		"date":        "2025-01-01",
	}
}

func TestCreateTransaction(t *testing.T) {
	txs := &fakeTransactions{}
	r := newTxApp("user-a", txs)

	w := doJSON(r, http.MethodPost, "/transaction", validTxBody())
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	tx := body["transaction"].(map[string]interface{})
	assert.Equal(t, "100", tx["amount"])
	assert.Equal(t, "income", tx["type"])
	assert.Equal(t, "user-a", tx["user_id"])
	require.Len(t, txs.items, 1)
}

func TestCreateTransaction_MissingFields(t *testing.T) {
	r := newTxApp("user-a", &fakeTransactions{})

	for _, field := range []string{"amount", "description", "type", "category", "date"} {
		body := validTxBody()
		delete(body, field)

		w := doJSON(r, http.MethodPost, "/transaction", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
		assert.Contains(t, w.Body.String(), field+" is required")
	}
}

func TestCreateTransaction_InvalidValues(t *testing.T) {
	r := newTxApp("user-a", &fakeTransactions{})

	cases := []struct {
		name string
		mod  func(map[string]interface{})
	}{
		{"negative amount", func(b map[string]interface{}) { b["amount"] = -5 }},
		{"zero amount", func(b map[string]interface{}) { b["amount"] = 0 }},
		{"bad type", func(b map[string]interface{}) { b["type"] = "transfer" }},
		{"bad date", func(b map[string]interface{}) { b["date"] = "01/01/2025" }},
	}
	for _, tc := range cases {
		body := validTxBody()
		tc.mod(body)

		w := doJSON(r, http.MethodPost, "/transaction", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
	}
}

func TestListTransactions_OwnershipFilter(t *testing.T) {
	txs := &fakeTransactions{items: []*models.Transaction{
		{ID: primitive.NewObjectID(), UserID: "user-a", Amount: "100", Type: "income", Description: "mine"},
		{ID: primitive.NewObjectID(), UserID: "user-b", Amount: "999", Type: "income", Description: "theirs"},
	}}
	r := newTxApp("user-a", txs)

	w := doJSON(r, http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mine")
	assert.NotContains(t, w.Body.String(), "theirs")
}

func TestUpdateTransaction(t *testing.T) {
	id := primitive.NewObjectID()
	txs := &fakeTransactions{items: []*models.Transaction{
		{ID: id, UserID: "user-a", Amount: "100", Type: "income"},
	}}
	r := newTxApp("user-a", txs)

	w := doJSON(r, http.MethodPut, "/transaction?transaction_id="+id.Hex(),
		map[string]interface{}{"amount": 150})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "150", txs.items[0].Amount)
}

func TestUpdateTransaction_EmptyBody(t *testing.T) {
	id := primitive.NewObjectID()
	txs := &fakeTransactions{items: []*models.Transaction{
		{ID: id, UserID: "user-a", Amount: "100", Type: "income"},
	}}
	r := newTxApp("user-a", txs)

	w := doJSON(r, http.MethodPut, "/transaction?transaction_id="+id.Hex(),
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	r := newTxApp("user-a", &fakeTransactions{})

	w := doJSON(r, http.MethodPut, "/transaction?transaction_id="+primitive.NewObjectID().Hex(),
		map[string]interface{}{"amount": 150})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTransaction(t *testing.T) {
	id := primitive.NewObjectID()
	txs := &fakeTransactions{items: []*models.Transaction{
		{ID: id, UserID: "user-a", Amount: "100", Type: "income"},
	}}
	r := newTxApp("user-a", txs)

	w := doJSON(r, http.MethodDelete, "/transaction?transaction_id="+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
	assert.Empty(t, txs.items)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	r := newTxApp("user-a", &fakeTransactions{})

	w := doJSON(r, http.MethodDelete, "/transaction?transaction_id="+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTransaction_MissingID(t *testing.T) {
	r := newTxApp("user-a", &fakeTransactions{})

	w := doJSON(r, http.MethodDelete, "/transaction", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "transaction_id is required")
}

func TestDeleteTransaction_OtherUsersRecord(t *testing.T) {
	id := primitive.NewObjectID()
	txs := &fakeTransactions{items: []*models.Transaction{
		{ID: id, UserID: "user-b", Amount: "100", Type: "income"},
	}}
	r := newTxApp("user-a", txs)

	w := doJSON(r, http.MethodDelete, "/transaction?transaction_id="+id.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, txs.items, 1)
}
