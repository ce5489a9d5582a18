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

func newTodoApp(userID string, todos *fakeTodos) *gin.Engine {
	h := NewTodoHandler(todos)
	r := gin.New()
	r.Use(asUser(userID))
	r.GET("/todos", h.List)
	r.GET("/todo", h.Get)
	r.POST("/todo", h.Create)
	r.PUT("/todo", h.Update)
	r.DELETE("/todo", h.Delete)
	return r
}

func TestCreateTodo_DefaultsToNotCompleted(t *testing.T) {
	todos := &fakeTodos{}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodPost, "/todo", map[string]interface{}{
		"title":     "Buy milk",
		"completed": true, // ignored: new todos always start open
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	todo := body["todo"].(map[string]interface{})
	assert.Equal(t, "Buy milk", todo["title"])
	assert.Equal(t, false, todo["completed"])
	assert.Equal(t, "user-a", todo["user_id"])
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	r := newTodoApp("user-a", &fakeTodos{})

	w := doJSON(r, http.MethodPost, "/todo", map[string]interface{}{"completed": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTodos_OwnershipFilter(t *testing.T) {
	todos := &fakeTodos{items: []*models.Todo{
		{ID: primitive.NewObjectID(), UserID: "user-a", Title: "mine"},
		{ID: primitive.NewObjectID(), UserID: "user-b", Title: "theirs"},
	}}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodGet, "/todos", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Contains(t, w.Body.String(), "mine")
	assert.NotContains(t, w.Body.String(), "theirs")
}

func TestGetTodo_WithoutIDIsEmptyAck(t *testing.T) {
	r := newTodoApp("user-a", &fakeTodos{})

	w := doJSON(r, http.MethodGet, "/todo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Get Todo Complete", body["message"])
	assert.NotContains(t, body, "todo")
}

func TestGetTodo_ByID(t *testing.T) {
	id := primitive.NewObjectID()
	todos := &fakeTodos{items: []*models.Todo{
		{ID: id, UserID: "user-a", Title: "mine"},
	}}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodGet, "/todo?todo_id="+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mine")
}

func TestGetTodo_OtherUsersTodoIsNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	todos := &fakeTodos{items: []*models.Todo{
		{ID: id, UserID: "user-b", Title: "theirs"},
	}}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodGet, "/todo?todo_id="+id.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTodo(t *testing.T) {
	id := primitive.NewObjectID()
	todos := &fakeTodos{items: []*models.Todo{
		{ID: id, UserID: "user-a", Title: "Buy milk"},
	}}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodPut, "/todo?todo_id="+id.Hex(), map[string]interface{}{
		"title":     "Buy milk",
		"completed": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, todos.items[0].Completed)
}

func TestUpdateTodo_RequiresBothFields(t *testing.T) {
	id := primitive.NewObjectID()
	todos := &fakeTodos{items: []*models.Todo{
		{ID: id, UserID: "user-a", Title: "Buy milk"},
	}}
	r := newTodoApp("user-a", todos)

	for _, body := range []map[string]interface{}{
		{},
		{"title": "Buy milk"},
		{"completed": true},
	} {
		w := doJSON(r, http.MethodPut, "/todo?todo_id="+id.Hex(), body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestUpdateTodo_MissingID(t *testing.T) {
	r := newTodoApp("user-a", &fakeTodos{})

	w := doJSON(r, http.MethodPut, "/todo", map[string]interface{}{
		"title": "x", "completed": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTodo_NoChangeIsNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	todos := &fakeTodos{items: []*models.Todo{
		{ID: id, UserID: "user-a", Title: "Buy milk", Completed: false},
	}}
	r := newTodoApp("user-a", todos)

	// identical values: merged with the not-found case on purpose
	w := doJSON(r, http.MethodPut, "/todo?todo_id="+id.Hex(), map[string]interface{}{
		"title": "Buy milk", "completed": false,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTodo(t *testing.T) {
	id := primitive.NewObjectID()
	todos := &fakeTodos{items: []*models.Todo{
		{ID: id, UserID: "user-a", Title: "Buy milk"},
	}}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodDelete, "/todo?todo_id="+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, todos.items)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	r := newTodoApp("user-a", &fakeTodos{})

	w := doJSON(r, http.MethodDelete, "/todo?todo_id="+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTodo_MalformedIDIsNotFound(t *testing.T) {
	todos := &fakeTodos{}
	r := newTodoApp("user-a", todos)

	w := doJSON(r, http.MethodDelete, "/todo?todo_id=zzz", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
