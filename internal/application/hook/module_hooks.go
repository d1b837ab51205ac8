package hook

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todo-list/configs"
	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/presenter"
	"todo-list/pkg/hooks"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
)

// RegisterModuleHooks wires the module into the lifecycle and render hooks.
// basePath is the context path the todo list form is served under.
func RegisterModuleHooks(registry *hooks.Registry, module *configs.ModuleConfig, basePath string) {
	registry.Once(hooks.Init, func(ctx context.Context, args ...any) error {
		log.Info(msg.GetMessage("app.init", module.ID))
		return nil
	})

	registry.Once(hooks.Ready, func(ctx context.Context, args ...any) error {
		log.Info(msg.GetMessage("app.ready", module.ID))
		return nil
	})

	registry.On(hooks.RenderPlayerList, func(ctx context.Context, args ...any) error {
		view, err := playerListArg(args)
		if err != nil {
			return err
		}
		AddToDoButton(view, module, basePath)
		return nil
	})

	registry.On(hooks.ToDosChanged, func(ctx context.Context, args ...any) error {
		if len(args) == 0 {
			return nil
		}
		if event, ok := args[0].(model.ToDoEvent); ok {
			log.Info(msg.GetMessage("todo-list.event.received", string(event.Type), event.UserID),
				zap.Strings("toDoIds", event.ToDoIDs))
		}
		return nil
	})
}

// AddToDoButton appends the todo list button to the current user's entry.
func AddToDoButton(view *model.PlayerListView, module *configs.ModuleConfig, basePath string) {
	for i := range view.Players {
		player := &view.Players[i]
		if player.UserID != view.CurrentUserID {
			continue
		}
		player.Controls = append(player.Controls, model.Control{
			Class: module.ID + "-icon-button",
			Icon:  "fas fa-tasks",
			Title: msg.GetMessage("todo-list.button-title"),
			Href:  presenter.FormPath(basePath, player.UserID),
		})
	}
}

func playerListArg(args []any) (*model.PlayerListView, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: missing player list", hooks.RenderPlayerList)
	}
	view, ok := args[0].(*model.PlayerListView)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected argument %T", hooks.RenderPlayerList, args[0])
	}
	return view, nil
}
