package delivery

import (
	"net/http"
	"strconv"

	"todo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
	}
}

// GetTodos returns todos for the authenticated user
// GET /api/todos?status=active&sort=due_date&limit=50&offset=0
func (h *TodoHandler) GetTodos(c *gin.Context) {
	userID := c.GetString("userID")

	status := c.DefaultQuery("status", "all")
	sort := c.DefaultQuery("sort", "created_date")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	todos, total, err := h.todoUsecase.GetUserTodos(userID, status, sort, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todos": todos,
		"total": total,
	})
}

// GetTodoByID returns a specific todo
// GET /api/todos/:id
func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	todo, err := h.todoUsecase.GetTodoByID(userID, todoID)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// CreateTodo creates a new todo manually
// POST /api/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.CreateTodo(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo updates an existing todo
// PUT /api/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	var updates usecase.TodoUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.UpdateTodo(userID, todoID, updates)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo deletes a todo
// DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	if err := h.todoUsecase.DeleteTodo(userID, todoID); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// SetCompleted marks a todo completed or active
// PATCH /api/todos/:id/complete
func (h *TodoHandler) SetCompleted(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.SetCompleted(userID, todoID, *req.Completed)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

func respondTodoError(c *gin.Context, err error) {
	switch err.Error() {
	case "todo not found":
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	case "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
