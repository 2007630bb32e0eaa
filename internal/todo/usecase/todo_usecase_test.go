package usecase

import (
	"testing"
	"time"

	"todo-backend/internal/todo/domain"
	"todo-backend/internal/todo/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTodoRepository is an in-memory TodoRepository for usecase tests.
type memoryTodoRepository struct {
	todos map[string]*domain.Todo
}

func newMemoryRepo() *memoryTodoRepository {
	return &memoryTodoRepository{todos: make(map[string]*domain.Todo)}
}

func (r *memoryTodoRepository) Create(todo *domain.Todo) error {
	r.todos[todo.ID] = todo
	return nil
}

func (r *memoryTodoRepository) FindByID(id string) (*domain.Todo, error) {
	return r.todos[id], nil
}

func (r *memoryTodoRepository) FindByUserID(userID string, filter repository.ListFilter) ([]*domain.Todo, int64, error) {
	var result []*domain.Todo
	for _, t := range r.todos {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, int64(len(result)), nil
}

func (r *memoryTodoRepository) Update(todo *domain.Todo) error {
	r.todos[todo.ID] = todo
	return nil
}

func (r *memoryTodoRepository) Delete(id string) error {
	delete(r.todos, id)
	return nil
}

func TestCreateTodoDefaults(t *testing.T) {
	uc := NewTodoUsecase(newMemoryRepo())

	todo, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "buy milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "u1", todo.UserID)
	assert.Equal(t, domain.PriorityMedium, todo.Priority)
	assert.Nil(t, todo.DueDate)
	assert.False(t, todo.Completed)
}

func TestCreateTodoParsesDueDateFormats(t *testing.T) {
	uc := NewTodoUsecase(newMemoryRepo())

	tests := []struct {
		value    string
		expected time.Time
	}{
		{"2025-03-01", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-03-01T14:30", time.Date(2025, time.March, 1, 14, 30, 0, 0, time.UTC)},
		{"2025-03-01T14:30:00Z", time.Date(2025, time.March, 1, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		value := tt.value
		todo, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "t", DueDate: &value})
		require.NoError(t, err, "due date %q", tt.value)
		require.NotNil(t, todo.DueDate)
		assert.True(t, tt.expected.Equal(*todo.DueDate), "due date %q", tt.value)
	}
}

func TestGetTodoByIDOwnership(t *testing.T) {
	uc := NewTodoUsecase(newMemoryRepo())

	created, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "mine"})
	require.NoError(t, err)

	got, err := uc.GetTodoByID("u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = uc.GetTodoByID("u2", created.ID)
	require.Error(t, err)
	assert.Equal(t, "unauthorized", err.Error())

	_, err = uc.GetTodoByID("u1", "missing")
	require.Error(t, err)
	assert.Equal(t, "todo not found", err.Error())
}

func TestUpdateTodoPartial(t *testing.T) {
	uc := NewTodoUsecase(newMemoryRepo())

	created, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "old", Description: "keep me", Priority: "high"})
	require.NoError(t, err)

	newTitle := "new"
	updated, err := uc.UpdateTodo("u1", created.ID, TodoUpdateRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
}

func TestUpdateTodoClearsDueDate(t *testing.T) {
	uc := NewTodoUsecase(newMemoryRepo())

	due := "2025-03-01"
	created, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "t", DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)

	empty := ""
	updated, err := uc.UpdateTodo("u1", created.ID, TodoUpdateRequest{DueDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
}

func TestSetCompleted(t *testing.T) {
	uc := NewTodoUsecase(newMemoryRepo())

	created, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "t"})
	require.NoError(t, err)

	done, err := uc.SetCompleted("u1", created.ID, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	reopened, err := uc.SetCompleted("u1", created.ID, false)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
}

func TestDeleteTodoChecksOwnership(t *testing.T) {
	repo := newMemoryRepo()
	uc := NewTodoUsecase(repo)

	created, err := uc.CreateTodo("u1", CreateTodoRequest{Title: "t"})
	require.NoError(t, err)

	require.Error(t, uc.DeleteTodo("u2", created.ID))
	require.NoError(t, uc.DeleteTodo("u1", created.ID))
	assert.Empty(t, repo.todos)
}
