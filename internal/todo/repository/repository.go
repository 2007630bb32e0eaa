package repository

import (
	"time"

	"todo-backend/internal/todo/domain"
)

// Status filter values accepted by FindByUserID
const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

// Sort options accepted by FindByUserID
const (
	SortPriority    = "priority"
	SortDueDate     = "due_date"
	SortCreatedDate = "created_date"
	SortTitle       = "title"
)

// ListFilter narrows and orders a user's todo listing
type ListFilter struct {
	Status string    // all | active | completed | overdue
	Sort   string    // priority | due_date | created_date | title
	Now    time.Time // reference time for the overdue filter
	Limit  int
	Offset int
}

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *domain.Todo) error

	// FindByID finds a todo by its ID
	FindByID(id string) (*domain.Todo, error)

	// FindByUserID finds all todos for a user with optional filters
	FindByUserID(userID string, filter ListFilter) ([]*domain.Todo, int64, error)

	// Update updates an existing todo
	Update(todo *domain.Todo) error

	// Delete deletes a todo by ID
	Delete(id string) error
}
