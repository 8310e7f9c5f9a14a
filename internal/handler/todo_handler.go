package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// TodoHandler handles todo endpoints.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler constructs a todo handler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// List godoc
// @Summary List todos
// @Tags Todos
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	todos, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, todos)
}

// Create godoc
// @Summary Add todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param payload body dto.CreateTodoRequest true "Todo payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	todo, err := h.service.Add(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, todo)
}

// Update godoc
// @Summary Update todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param index path int true "Todo index"
// @Param payload body dto.UpdateTodoRequest true "Todo payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /todos/{index} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	todo, err := h.service.Update(c.Request.Context(), user, index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete todo
// @Tags Todos
// @Produce json
// @Param index path int true "Todo index"
// @Success 204
// @Security BearerAuth
// @Router /todos/{index} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user, index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
