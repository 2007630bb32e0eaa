package usecase

import "todo-backend/internal/todo/domain"

// TodoUsecase defines the interface for todo business logic
type TodoUsecase interface {
	// CreateTodo creates a new todo
	CreateTodo(userID string, req CreateTodoRequest) (*domain.Todo, error)

	// GetTodoByID retrieves a todo by ID (with ownership check)
	GetTodoByID(userID, todoID string) (*domain.Todo, error)

	// GetUserTodos retrieves todos for a user with status filter and sorting
	GetUserTodos(userID, status, sort string, limit, offset int) ([]*domain.Todo, int64, error)

	// UpdateTodo updates an existing todo
	UpdateTodo(userID, todoID string, updates TodoUpdateRequest) (*domain.Todo, error)

	// DeleteTodo deletes a todo
	DeleteTodo(userID, todoID string) error

	// SetCompleted marks a todo completed or active
	SetCompleted(userID, todoID string, completed bool) (*domain.Todo, error)
}

// CreateTodoRequest represents the fields accepted when creating a todo
type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	Completed   bool    `json:"completed"`
}

// TodoUpdateRequest represents the fields that can be updated
type TodoUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
