package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type todoRepository interface {
	List(ctx context.Context, user string) ([]models.Todo, error)
	Replace(ctx context.Context, user string, todos []models.Todo) error
}

// TodoService manages the positional todo list.
type TodoService struct {
	repo      todoRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTodoService constructs a TodoService instance.
func NewTodoService(repo todoRepository, validate *validator.Validate, logger *zap.Logger) *TodoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoService{repo: repo, validator: validate, logger: logger}
}

// List returns all todos in insertion order.
func (s *TodoService) List(ctx context.Context, user string) ([]dto.TodoView, error) {
	todos, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load todos")
	}

	views := make([]dto.TodoView, 0, len(todos))
	for i, todo := range todos {
		views = append(views, dto.TodoView{Index: i, Todo: todo})
	}
	return views, nil
}

// Add appends a new open task. Empty text is rejected before persistence.
func (s *TodoService) Add(ctx context.Context, user string, req dto.CreateTodoRequest) (*dto.TodoView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid todo payload")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "todo text is required")
	}

	todos, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load todos")
	}

	todo := models.Todo{
		Text:    strings.TrimSpace(req.Text),
		Fach:    strings.TrimSpace(req.Fach),
		Wichtig: req.Wichtig,
		Faellig: models.ParseDate(req.Faellig),
	}
	todos = append(todos, todo)

	if err := s.repo.Replace(ctx, user, todos); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save todo")
	}

	return &dto.TodoView{Index: len(todos) - 1, Todo: todo}, nil
}

// Update toggles the done and wichtig flags of a task.
func (s *TodoService) Update(ctx context.Context, user string, index int, req dto.UpdateTodoRequest) (*dto.TodoView, error) {
	todos, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load todos")
	}
	if index < 0 || index >= len(todos) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "todo not found")
	}

	if req.Done != nil {
		todos[index].Done = *req.Done
	}
	if req.Wichtig != nil {
		todos[index].Wichtig = *req.Wichtig
	}

	if err := s.repo.Replace(ctx, user, todos); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save todo")
	}

	return &dto.TodoView{Index: index, Todo: todos[index]}, nil
}

// Delete removes the task at the given list position.
func (s *TodoService) Delete(ctx context.Context, user string, index int) error {
	todos, err := s.repo.List(ctx, user)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load todos")
	}
	if index < 0 || index >= len(todos) {
		return appErrors.Clone(appErrors.ErrNotFound, "todo not found")
	}

	todos = append(todos[:index], todos[index+1:]...)

	if err := s.repo.Replace(ctx, user, todos); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete todo")
	}
	return nil
}

// OpenSorted returns up to limit open tasks, important ones first, then by
// due date with dateless tasks pushed a year out.
func (s *TodoService) OpenSorted(ctx context.Context, user string, limit int) ([]dto.TodoView, error) {
	todos, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load todos")
	}

	open := make([]dto.TodoView, 0, len(todos))
	for i, todo := range todos {
		if todo.Done {
			continue
		}
		open = append(open, dto.TodoView{Index: i, Todo: todo})
	}

	sort.SliceStable(open, func(a, b int) bool {
		ta, tb := open[a].Todo, open[b].Todo
		if ta.Wichtig != tb.Wichtig {
			return ta.Wichtig
		}
		return sortKeyDate(ta.Faellig).Before(sortKeyDate(tb.Faellig))
	})

	if limit > 0 && len(open) > limit {
		open = open[:limit]
	}
	return open, nil
}

// sortKeyDate treats a missing due date as one year from now so dated tasks
// come first.
func sortKeyDate(d models.Date) models.Date {
	if d.Valid {
		return d
	}
	return models.NewDate(timeNow().AddDate(1, 0, 0))
}
