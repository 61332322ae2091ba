package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskvault-api/internal/core/ports"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

type todoRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Completed   bool   `json:"completed"`
}

// List returns the caller's todos, optionally filtered with ?completed=.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Param        completed  query  bool  false  "Filter by completion"
// @Success      200  {array}  domain.Todo
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var completed *bool
	if raw := c.QueryParam("completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "completed must be true or false")
		}
		completed = &v
	}

	todos, err := h.todoService.List(c.Request().Context(), p.ID, completed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// Get returns a single todo owned by the caller.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Success      200  {object}  domain.Todo
// @Failure      404  {object}  map[string]any
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Get(c.Request().Context(), p.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Create adds a todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      todoRequest  true  "Todo fields"
// @Success      201   {object}  domain.Todo
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.todoService.Create(c.Request().Context(), p.ID, req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update replaces a todo's title, description, and completion state.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      todoRequest  true  "Todo fields"
// @Success      200   {object}  domain.Todo
// @Failure      404   {object}  map[string]any
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.todoService.Update(c.Request().Context(), p.ID, c.Param("id"), req.Title, req.Description, req.Completed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Toggle flips a todo's completion state.
//
// @Summary      Toggle completion
// @Tags         todos
// @Produce      json
// @Success      200  {object}  domain.Todo
// @Failure      404  {object}  map[string]any
// @Router       /todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Toggle(c.Request().Context(), p.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete removes a todo owned by the caller.
//
// @Summary      Delete a todo
// @Tags         todos
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), p.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
