package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type mockTodoRepo struct {
	todos   []models.Todo
	listErr error
}

func (m *mockTodoRepo) List(_ context.Context, _ string) ([]models.Todo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Todo, len(m.todos))
	copy(out, m.todos)
	return out, nil
}

func (m *mockTodoRepo) Replace(_ context.Context, _ string, todos []models.Todo) error {
	m.todos = todos
	return nil
}

func TestTodoServiceAddRejectsBlankText(t *testing.T) {
	svc := NewTodoService(&mockTodoRepo{}, nil, nil)

	_, err := svc.Add(context.Background(), "alice", dto.CreateTodoRequest{Text: "   "})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTodoServiceAddTrimsText(t *testing.T) {
	repo := &mockTodoRepo{}
	svc := NewTodoService(repo, nil, nil)

	view, err := svc.Add(context.Background(), "alice", dto.CreateTodoRequest{Text: "  Skript lesen  ", Faellig: "2026-09-10"})
	require.NoError(t, err)
	assert.Equal(t, "Skript lesen", view.Todo.Text)
	assert.Equal(t, "2026-09-10", view.Todo.Faellig.String())
	assert.False(t, view.Todo.Done)
}

func TestTodoServiceUpdateToggleFlags(t *testing.T) {
	repo := &mockTodoRepo{todos: []models.Todo{{Text: "lesen"}}}
	svc := NewTodoService(repo, nil, nil)

	done := true
	view, err := svc.Update(context.Background(), "alice", 0, dto.UpdateTodoRequest{Done: &done})
	require.NoError(t, err)
	assert.True(t, view.Todo.Done)
	assert.True(t, repo.todos[0].Done)
}

func TestTodoServiceDeleteIsPositional(t *testing.T) {
	repo := &mockTodoRepo{todos: []models.Todo{
		{Text: "erstes"},
		{Text: "zweites"},
		{Text: "drittes"},
	}}
	svc := NewTodoService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "alice", 1))
	require.Len(t, repo.todos, 2)
	assert.Equal(t, "erstes", repo.todos[0].Text)
	assert.Equal(t, "drittes", repo.todos[1].Text)

	err := svc.Delete(context.Background(), "alice", 5)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTodoServiceOpenSortedOrdering(t *testing.T) {
	repo := &mockTodoRepo{todos: []models.Todo{
		{Text: "erledigt", Done: true, Wichtig: true},
		{Text: "ohne datum"},
		{Text: "wichtig spät", Wichtig: true, Faellig: models.ParseDate("2026-12-01")},
		{Text: "früh", Faellig: models.ParseDate("2026-09-05")},
		{Text: "wichtig früh", Wichtig: true, Faellig: models.ParseDate("2026-09-03")},
	}}
	svc := NewTodoService(repo, nil, nil)

	open, err := svc.OpenSorted(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, open, 4)
	assert.Equal(t, "wichtig früh", open[0].Todo.Text)
	assert.Equal(t, "wichtig spät", open[1].Todo.Text)
	assert.Equal(t, "früh", open[2].Todo.Text)
	assert.Equal(t, "ohne datum", open[3].Todo.Text)

	// Index still points at the stored position.
	assert.Equal(t, 4, open[0].Index)
}

func TestTodoServiceOpenSortedLimit(t *testing.T) {
	repo := &mockTodoRepo{todos: []models.Todo{
		{Text: "a"}, {Text: "b"}, {Text: "c"},
	}}
	svc := NewTodoService(repo, nil, nil)

	open, err := svc.OpenSorted(context.Background(), "alice", 2)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}
