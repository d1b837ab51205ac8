package presenter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"todo-list/configs"
	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/hooks"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
)

var labelKeys = []string{"title", "button-title", "add-todo", "delete-todo", "label-placeholder"}

type presenterUseCase struct {
	module      *configs.ModuleConfig
	toDos       todo.UseCase
	userGateway user.UserGateway
	hooks       *hooks.Registry
	basePath    string
}

// NewPresenterUseCase builds the presenter. basePath prefixes the form action
// and the links handed to the player list.
func NewPresenterUseCase(module *configs.ModuleConfig, toDos todo.UseCase, userGateway user.UserGateway, registry *hooks.Registry, basePath string) UseCase {
	return &presenterUseCase{
		module:      module,
		toDos:       toDos,
		userGateway: userGateway,
		hooks:       registry,
		basePath:    strings.TrimSuffix(basePath, "/"),
	}
}

// FormPath is the address of the todo list form of userID under basePath.
func FormPath(basePath, userID string) string {
	return strings.TrimSuffix(basePath, "/") + "/users/" + url.PathEscape(userID) + "/todo-list"
}

func (useCase *presenterUseCase) GetData(ctx context.Context, userID string) (*model.ToDoListView, error) {
	toDos, err := useCase.toDos.GetToDosForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &model.ToDoListView{
		UserID:   userID,
		UserName: userID,
		Template: useCase.module.Templates.ToDoList,
		Action:   FormPath(useCase.basePath, userID),
		ToDos:    toDos.Sorted(),
		Labels:   make(map[string]string, len(labelKeys)),
	}
	if u, err := useCase.userGateway.FindByID(ctx, userID); err == nil && u != nil && u.Name != "" {
		view.UserName = u.Name
	}
	for _, key := range labelKeys {
		view.Labels[key] = msg.GetMessage("todo-list." + key)
	}
	return view, nil
}

func (useCase *presenterUseCase) UpdateObject(ctx context.Context, userID string, form url.Values) (*model.ToDoListView, error) {
	action := form.Get(fieldAction)
	switch action {
	case actionCreate:
		if _, err := useCase.toDos.CreateToDo(ctx, userID, model.CreateToDoDTO{Label: form.Get(fieldLabel)}); err != nil {
			return nil, err
		}
	case actionDelete:
		if err := useCase.deleteOwn(ctx, userID, form.Get(fieldToDoID)); err != nil {
			return nil, err
		}
	case "", actionUpdate:
		updates, err := ExpandForm(form)
		if err != nil {
			return nil, err
		}
		if _, err := useCase.toDos.UpdateUserToDos(ctx, userID, updates); err != nil {
			return nil, err
		}
	default:
		return nil, unknownField(fieldAction + "=" + action)
	}
	return useCase.GetData(ctx, userID)
}

// deleteOwn only deletes todos of the form's user.
func (useCase *presenterUseCase) deleteOwn(ctx context.Context, userID, id string) error {
	toDos, err := useCase.toDos.GetToDosForUser(ctx, userID)
	if err != nil {
		return err
	}
	if _, ok := toDos[id]; !ok {
		return fmt.Errorf("%w: %s", todo.ErrToDoNotFound, id)
	}
	return useCase.toDos.DeleteToDo(ctx, id)
}

func (useCase *presenterUseCase) PlayerList(ctx context.Context, currentUserID string) (*model.PlayerListView, error) {
	users, err := useCase.userGateway.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	view := &model.PlayerListView{
		CurrentUserID: currentUserID,
		Players:       make([]model.PlayerListItem, 0, len(users)),
	}
	for _, u := range users {
		view.Players = append(view.Players, model.PlayerListItem{
			UserID:   u.ID,
			Name:     u.Name,
			Active:   u.Active,
			Controls: []model.Control{},
		})
	}

	if err := useCase.hooks.Call(ctx, hooks.RenderPlayerList, view); err != nil {
		log.Warn("renderPlayerList handler failed", zap.Error(err))
	}
	return view, nil
}
