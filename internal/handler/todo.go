package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DeniseL168/FinanceApp/internal/middleware"
	"github.com/DeniseL168/FinanceApp/internal/models"
	"github.com/DeniseL168/FinanceApp/internal/store"
	"github.com/DeniseL168/FinanceApp/internal/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// TodoHandler serves the todo CRUD routes.
type TodoHandler struct {
	Todos TodoStore
}

func NewTodoHandler(todos TodoStore) *TodoHandler {
	return &TodoHandler{Todos: todos}
}

// List returns all todos owned by the authenticated user.
func (h *TodoHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	todos, err := h.Todos.ListByUser(c.Request.Context(), userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.JSON(c, http.StatusOK, util.Response{
		"message": "Get Todos Complete",
		"todos":   todos,
		"count":   len(todos),
	})
}

// Get returns one todo by id. A lookup without todo_id is an empty ack.
func (h *TodoHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	todoID := c.Query("todo_id")
	if todoID == "" {
		util.JSON(c, http.StatusOK, util.Response{"message": "Get Todo Complete"})
		return
	}

	todo, err := h.Todos.FindByID(c.Request.Context(), userID, todoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Todo not found")
		} else {
			util.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.JSON(c, http.StatusOK, util.Response{
		"message": "Get Todo by ID Complete",
		"todo":    todo,
	})
}

type createTodoReq struct {
	Title string `json:"title"`
}

// Create stores a new todo owned by the authenticated user. The
// completed flag always starts false regardless of the request body.
func (h *TodoHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req createTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid todo data")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		util.Error(c, http.StatusBadRequest, "Invalid todo data")
		return
	}

	todo := &models.Todo{
		UserID:    userID,
		Title:     req.Title,
		Completed: false,
	}

	created, err := h.Todos.Create(c.Request.Context(), todo)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.JSON(c, http.StatusOK, util.Response{
		"message": "Create Todo Complete",
		"todo":    created,
	})
}

type updateTodoReq struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// Update overwrites title and completed. A miss and an update that
// changes nothing both answer 404.
func (h *TodoHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	todoID := c.Query("todo_id")
	if todoID == "" {
		util.Error(c, http.StatusBadRequest, "todo_id parameter is required")
		return
	}

	var req updateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == nil || req.Completed == nil {
		util.Error(c, http.StatusBadRequest, "Invalid todo data")
		return
	}

	fields := bson.M{
		"title":     *req.Title,
		"completed": *req.Completed,
	}

	err := h.Todos.Update(c.Request.Context(), userID, todoID, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Todo not found or no changes made")
		} else {
			util.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"message": "Todo updated successfully"})
}

// Delete removes one todo by id.
func (h *TodoHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	todoID := c.Query("todo_id")
	if todoID == "" {
		util.Error(c, http.StatusBadRequest, "todo_id parameter is required")
		return
	}

	err := h.Todos.Delete(c.Request.Context(), userID, todoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Todo not found")
		} else {
			util.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"message": "Todo deleted successfully"})
}
