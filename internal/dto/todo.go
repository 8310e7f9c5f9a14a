package dto

import "github.com/unidash/uni-dashboard-api/internal/models"

// CreateTodoRequest adds a new open task.
type CreateTodoRequest struct {
	Text    string `json:"text" validate:"required"`
	Fach    string `json:"fach"`
	Wichtig bool   `json:"wichtig"`
	Faellig string `json:"faellig" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTodoRequest toggles task flags. Nil fields are left untouched.
type UpdateTodoRequest struct {
	Done    *bool `json:"done"`
	Wichtig *bool `json:"wichtig"`
}

// TodoView is a todo with its list position, which serves as its identity.
type TodoView struct {
	Index int         `json:"index"`
	Todo  models.Todo `json:"todo"`
}
