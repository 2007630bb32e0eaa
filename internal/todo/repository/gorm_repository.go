package repository

import (
	"time"

	"todo-backend/internal/todo/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new GORM-based TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.CreatedDate = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByID(id string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.Where("id = ?", id).First(&todo).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) FindByUserID(userID string, filter ListFilter) ([]*domain.Todo, int64, error) {
	var todos []*domain.Todo
	var total int64

	query := r.db.Model(&domain.Todo{}).Where("user_id = ?", userID)

	switch filter.Status {
	case StatusActive:
		query = query.Where("completed = ?", false)
	case StatusCompleted:
		query = query.Where("completed = ?", true)
	case StatusOverdue:
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		query = query.Where("completed = ? AND due_date IS NOT NULL AND due_date < ?", false, today)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case SortPriority:
		query = query.Order("CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_date DESC")
	case SortDueDate:
		// Nulls last, earliest deadline first
		query = query.Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC")
	case SortTitle:
		query = query.Order("title ASC")
	default:
		query = query.Order("created_date DESC")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	err := query.Limit(limit).Offset(filter.Offset).Find(&todos).Error

	return todos, total, err
}

func (r *gormTodoRepository) Update(todo *domain.Todo) error {
	todo.UpdatedAt = time.Now()
	return r.db.Save(todo).Error
}

func (r *gormTodoRepository) Delete(id string) error {
	return r.db.Delete(&domain.Todo{}, "id = ?", id).Error
}
