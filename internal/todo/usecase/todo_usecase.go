package usecase

import (
	"errors"
	"time"

	"todo-backend/internal/todo/domain"
	"todo-backend/internal/todo/repository"

	"github.com/google/uuid"
)

// todoUsecase implements TodoUsecase interface
type todoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{
		todoRepo: todoRepo,
	}
}

func (u *todoUsecase) CreateTodo(userID string, req CreateTodoRequest) (*domain.Todo, error) {
	todo := &domain.Todo{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    parsePriority(req.Priority),
		Category:    req.Category,
		Completed:   req.Completed,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		if t, err := parseDueDate(*req.DueDate); err == nil {
			todo.DueDate = &t
		}
	}

	if err := u.todoRepo.Create(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (u *todoUsecase) GetTodoByID(userID, todoID string) (*domain.Todo, error) {
	todo, err := u.todoRepo.FindByID(todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, errors.New("todo not found")
	}
	if todo.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return todo, nil
}

func (u *todoUsecase) GetUserTodos(userID, status, sort string, limit, offset int) ([]*domain.Todo, int64, error) {
	filter := repository.ListFilter{
		Status: status,
		Sort:   sort,
		Now:    time.Now(),
		Limit:  limit,
		Offset: offset,
	}
	return u.todoRepo.FindByUserID(userID, filter)
}

func (u *todoUsecase) UpdateTodo(userID, todoID string, updates TodoUpdateRequest) (*domain.Todo, error) {
	todo, err := u.GetTodoByID(userID, todoID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		todo.Title = *updates.Title
	}
	if updates.Description != nil {
		todo.Description = *updates.Description
	}
	if updates.Priority != nil {
		todo.Priority = parsePriority(*updates.Priority)
	}
	if updates.Category != nil {
		todo.Category = *updates.Category
	}
	if updates.Completed != nil {
		todo.Completed = *updates.Completed
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			todo.DueDate = nil
		} else if t, err := parseDueDate(*updates.DueDate); err == nil {
			todo.DueDate = &t
		}
	}

	if err := u.todoRepo.Update(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (u *todoUsecase) DeleteTodo(userID, todoID string) error {
	todo, err := u.GetTodoByID(userID, todoID)
	if err != nil {
		return err
	}
	return u.todoRepo.Delete(todo.ID)
}

func (u *todoUsecase) SetCompleted(userID, todoID string, completed bool) (*domain.Todo, error) {
	todo, err := u.GetTodoByID(userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Completed = completed
	if err := u.todoRepo.Update(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// parseDueDate accepts the formats the UI and the ingestion pipeline emit
func parseDueDate(value string) (time.Time, error) {
	formats := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}
	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
