package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-list/configs"
	"todo-list/internal/domain/usecase/presenter"
)

// UserIDHeader carries the id of the user viewing the player list.
const UserIDHeader = "X-User-ID"

type ToDoListController struct {
	api     *echo.Group
	module  *configs.ModuleConfig
	useCase presenter.UseCase
}

func NewToDoListController(api *echo.Group, module *configs.ModuleConfig, useCase presenter.UseCase) *ToDoListController {
	return &ToDoListController{api: api, module: module, useCase: useCase}
}

// InitToDoListRoutes initializes the HTML form and player list routes
func (controller *ToDoListController) InitToDoListRoutes() {
	controller.api.GET("/users/:userId/todo-list", controller.GetData)
	controller.api.POST("/users/:userId/todo-list", controller.UpdateObject)
	controller.api.GET("/players", controller.PlayerList)
}

// GetData godoc
// @Summary Todo list form
// @Tags todo-list
// @Produce html
// @Param userId path string true "User id"
// @Success 200 {string} string "HTML form"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{userId}/todo-list [get]
func (controller *ToDoListController) GetData(c echo.Context) error {
	view, err := controller.useCase.GetData(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Render(http.StatusOK, controller.module.Templates.ToDoListView, view)
}

// UpdateObject godoc
// @Summary Submit the todo list form
// @Description Applies the form (update, create or delete action) and renders the form again
// @Tags todo-list
// @Accept x-www-form-urlencoded
// @Produce html
// @Param userId path string true "User id"
// @Success 200 {string} string "HTML form"
// @Failure 400 {object} map[string]string "Invalid form"
// @Failure 404 {object} map[string]string "User or todo not found"
// @Router /users/{userId}/todo-list [post]
func (controller *ToDoListController) UpdateObject(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return invalidBody(c)
	}

	view, err := controller.useCase.UpdateObject(c.Request().Context(), c.Param("userId"), form)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Render(http.StatusOK, controller.module.Templates.ToDoListView, view)
}

// PlayerList godoc
// @Summary Player list
// @Description Lists users; the viewing user's entry carries the todo list button
// @Tags todo-list
// @Produce html
// @Param X-User-ID header string false "Viewing user id"
// @Success 200 {string} string "HTML list"
// @Router /players [get]
func (controller *ToDoListController) PlayerList(c echo.Context) error {
	view, err := controller.useCase.PlayerList(c.Request().Context(), c.Request().Header.Get(UserIDHeader))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Render(http.StatusOK, controller.module.Templates.PlayerListView, view)
}
