package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/todo"
)

type ToDoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewToDoController(api *echo.Group, useCase todo.UseCase) *ToDoController {
	return &ToDoController{api: api, useCase: useCase}
}

// InitToDoRoutes initializes todo routes
func (controller *ToDoController) InitToDoRoutes() {
	controller.api.GET("/todos", controller.AllToDos)
	controller.api.PATCH("/todos/:id", controller.UpdateToDo)
	controller.api.DELETE("/todos/:id", controller.DeleteToDo)
	controller.api.GET("/users/:userId/todos", controller.GetToDosForUser)
	controller.api.POST("/users/:userId/todos", controller.CreateToDo)
	controller.api.PATCH("/users/:userId/todos", controller.UpdateUserToDos)
}

// AllToDos godoc
// @Summary Get every todo
// @Description Union of the todo collections of all registered users, keyed by todo id
// @Tags todos
// @Produce json
// @Success 200 {object} model.ToDos
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *ToDoController) AllToDos(c echo.Context) error {
	toDos, err := controller.useCase.AllToDos(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toDos)
}

// GetToDosForUser godoc
// @Summary Get the todos of a user
// @Tags todos
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} model.ToDos
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{userId}/todos [get]
func (controller *ToDoController) GetToDosForUser(c echo.Context) error {
	toDos, err := controller.useCase.GetToDosForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toDos)
}

// CreateToDo godoc
// @Summary Create a todo
// @Description Creates a todo with a fresh id; isDone defaults to false
// @Tags todos
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param todo body model.CreateToDoDTO true "Todo data"
// @Success 201 {object} entity.ToDo
// @Failure 400 {object} map[string]string "Invalid todo"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{userId}/todos [post]
func (controller *ToDoController) CreateToDo(c echo.Context) error {
	var data model.CreateToDoDTO
	if err := c.Bind(&data); err != nil {
		return invalidBody(c)
	}

	toDo, err := controller.useCase.CreateToDo(c.Request().Context(), c.Param("userId"), data)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toDo)
}

// UpdateUserToDos godoc
// @Summary Merge a batch of partial todos into a user's collection
// @Tags todos
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param updates body model.ToDoUpdates true "Partial todos keyed by id"
// @Success 200 {object} model.ToDos
// @Failure 400 {object} map[string]string "Invalid todo"
// @Failure 404 {object} map[string]string "User or todo not found"
// @Router /users/{userId}/todos [patch]
func (controller *ToDoController) UpdateUserToDos(c echo.Context) error {
	var updates model.ToDoUpdates
	if err := c.Bind(&updates); err != nil {
		return invalidBody(c)
	}

	toDos, err := controller.useCase.UpdateUserToDos(c.Request().Context(), c.Param("userId"), updates)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toDos)
}

// UpdateToDo godoc
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id"
// @Param todo body model.UpdateToDoDTO true "Fields to merge"
// @Success 200 {object} entity.ToDo
// @Failure 400 {object} map[string]string "Invalid todo"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [patch]
func (controller *ToDoController) UpdateToDo(c echo.Context) error {
	var data model.UpdateToDoDTO
	if err := c.Bind(&data); err != nil {
		return invalidBody(c)
	}

	toDo, err := controller.useCase.UpdateToDo(c.Request().Context(), c.Param("id"), data)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toDo)
}

// DeleteToDo godoc
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo id"
// @Success 204
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [delete]
func (controller *ToDoController) DeleteToDo(c echo.Context) error {
	if err := controller.useCase.DeleteToDo(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
