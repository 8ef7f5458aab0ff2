package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapi/internal/auth"
	"todoapi/internal/errors"
	"todoapi/internal/service"
)

// TodoHandler handles todo CRUD endpoints. Every route it serves sits behind
// the authorization gate, so the owner id always comes from a resolved user.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents a todo creation request.
type CreateTodoRequest struct {
	Title  string `json:"title" validate:"required,min=1,max=200"`
	IsDone bool   `json:"is_done"`
}

// UpdateTodoRequest represents a partial todo update; absent fields are left
// unchanged.
type UpdateTodoRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=1,max=200"`
	IsDone *bool   `json:"is_done"`
}

// List godoc
// @Summary List all todos of the current user
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	user := auth.CurrentUser(c)
	todos, err := h.todoService.List(c.Request().Context(), user.ID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// ListDone godoc
// @Summary List completed todos of the current user
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos/done [get]
func (h *TodoHandler) ListDone(c echo.Context) error {
	user := auth.CurrentUser(c)
	todos, err := h.todoService.ListDone(c.Request().Context(), user.ID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Get godoc
// @Summary Get a todo by id
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	user := auth.CurrentUser(c)
	todo, err := h.todoService.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "Todo data"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user := auth.CurrentUser(c)
	todo, err := h.todoService.Create(c.Request().Context(), user.ID, req.Title, req.IsDone)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update godoc
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to update"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user := auth.CurrentUser(c)
	todo, err := h.todoService.Update(c.Request().Context(), c.Param("id"), user.ID, req.Title, req.IsDone)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	user := auth.CurrentUser(c)
	if err := h.todoService.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "deleted"})
}

func (h *TodoHandler) fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("todo: %v", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
