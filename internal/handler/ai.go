package handler

import (
	"net/http"

	"github.com/DeniseL168/FinanceApp/internal/ai"
	"github.com/DeniseL168/FinanceApp/internal/middleware"
	"github.com/DeniseL168/FinanceApp/internal/util"

	"github.com/gin-gonic/gin"
)

// AIHandler relays user questions to the completion service with the
// user's aggregated finance data as context.
type AIHandler struct {
	Transactions TransactionStore
	Completer    Completer
}

func NewAIHandler(txs TransactionStore, completer Completer) *AIHandler {
	return &AIHandler{Transactions: txs, Completer: completer}
}

type chatReq struct {
	Message string `json:"message"`
}

// Chat answers a finance question. Upstream failures surface as a 500
// carrying the upstream error text; no retry.
func (h *AIHandler) Chat(c *gin.Context) {
	userID := middleware.UserID(c)

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		util.Error(c, http.StatusBadRequest, "No message provided")
		return
	}

	txs, err := h.Transactions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	prompt := ai.BuildPrompt(txs, req.Message)

	reply, err := h.Completer.Complete(c.Request.Context(), prompt)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"response": reply})
}
