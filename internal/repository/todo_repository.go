package repository

import (
	"context"

	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/store"
)

// TodoRepository accesses the todos collection of a user's document.
type TodoRepository struct {
	store *store.DocumentStore
}

// NewTodoRepository creates a new instance of TodoRepository.
func NewTodoRepository(s *store.DocumentStore) *TodoRepository {
	return &TodoRepository{store: s}
}

// List returns all todos in insertion order.
func (r *TodoRepository) List(ctx context.Context, user string) ([]models.Todo, error) {
	doc, err := r.store.Load(user)
	if err != nil {
		return nil, err
	}
	return doc.Todos, nil
}

// Replace swaps the todo collection and persists the document.
func (r *TodoRepository) Replace(ctx context.Context, user string, todos []models.Todo) error {
	doc, err := r.store.Load(user)
	if err != nil {
		return err
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	doc.Todos = todos
	return r.store.Save(user, doc)
}
