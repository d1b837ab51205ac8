package presenter

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"todo-list/configs"
	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/gateway/flag"
	"todo-list/internal/domain/gateway/queue"
	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/hooks"
	"todo-list/pkg/util/idutils/idutilstest"
)

type fixture struct {
	presenter UseCase
	toDos     todo.UseCase
	hooks     *hooks.Registry
}

func newFixture(t *testing.T, ids ...string) fixture {
	t.Helper()

	module := configs.NewModuleConfig("")
	users := user.NewMemoryUserGateway(
		entity.User{ID: "gm", Name: "Gamemaster", Active: true},
		entity.User{ID: "p1", Name: "Player 1"},
	)
	toDos := todo.NewToDoUseCase(module, flag.NewMemoryFlagGateway(), users, queue.LogEventPublisher{}, idutilstest.NewSequenceIDGenerator(ids...), 0)
	registry := hooks.New()

	return fixture{
		presenter: NewPresenterUseCase(module, toDos, users, registry, "/todo-list/"),
		toDos:     toDos,
		hooks:     registry,
	}
}

func TestGetData(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "b", "a")

	f.toDos.CreateToDo(ctx, "p1", model.CreateToDoDTO{Label: "zebra"})
	f.toDos.CreateToDo(ctx, "p1", model.CreateToDoDTO{Label: "apple"})

	view, err := f.presenter.GetData(ctx, "p1")
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if view.UserName != "Player 1" || view.Action != "/todo-list/users/p1/todo-list" {
		t.Errorf("view: got %+v", view)
	}
	if view.Template != "modules/todo-list/templates/todo-list.hbs" {
		t.Errorf("Template: got %q", view.Template)
	}
	if len(view.ToDos) != 2 || view.ToDos[0].Label != "apple" || view.ToDos[1].Label != "zebra" {
		t.Errorf("ToDos: got %v", view.ToDos)
	}
	if _, ok := view.Labels["title"]; !ok {
		t.Errorf("Labels: got %v", view.Labels)
	}

	if _, err := f.presenter.GetData(ctx, "ghost"); !errors.Is(err, todo.ErrUserNotFound) {
		t.Errorf("unknown user: got %v", err)
	}
}

func TestUpdateObject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "a", "b")

	view, err := f.presenter.UpdateObject(ctx, "p1", url.Values{"action": {"create"}, "label": {"first"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(view.ToDos) != 1 || view.ToDos[0].ID != "a" {
		t.Fatalf("after create: %v", view.ToDos)
	}

	view, err = f.presenter.UpdateObject(ctx, "p1", url.Values{
		"a.label":  {"renamed"},
		"a.isDone": {"false", "on"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := view.ToDos[0]; got.Label != "renamed" || !got.IsDone || got.UserID != "p1" {
		t.Errorf("after update: %+v", got)
	}

	if _, err := f.presenter.UpdateObject(ctx, "p1", url.Values{"missing.isDone": {"on"}}); !errors.Is(err, todo.ErrToDoNotFound) {
		t.Errorf("update unknown id: got %v", err)
	}

	f.toDos.CreateToDo(ctx, "gm", model.CreateToDoDTO{Label: "gm's"})
	if _, err := f.presenter.UpdateObject(ctx, "p1", url.Values{"action": {"delete"}, "toDoId": {"b"}}); !errors.Is(err, todo.ErrToDoNotFound) {
		t.Errorf("delete other user's todo: got %v", err)
	}

	view, err = f.presenter.UpdateObject(ctx, "p1", url.Values{"action": {"delete"}, "toDoId": {"a"}})
	if err != nil || len(view.ToDos) != 0 {
		t.Errorf("delete: view=%v err=%v", view, err)
	}

	if _, err := f.presenter.UpdateObject(ctx, "p1", url.Values{"action": {"archive"}}); !errors.Is(err, todo.ErrInvalidToDo) {
		t.Errorf("unknown action: got %v", err)
	}
}

func TestPlayerList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.hooks.On(hooks.RenderPlayerList, func(ctx context.Context, args ...any) error {
		view := args[0].(*model.PlayerListView)
		for i := range view.Players {
			if view.Players[i].UserID == view.CurrentUserID {
				view.Players[i].Controls = append(view.Players[i].Controls, model.Control{Class: "todo-list-icon-button"})
			}
		}
		return nil
	})

	view, err := f.presenter.PlayerList(ctx, "p1")
	if err != nil {
		t.Fatalf("PlayerList: %v", err)
	}
	if len(view.Players) != 2 || view.Players[0].UserID != "gm" {
		t.Fatalf("Players: got %v", view.Players)
	}
	if len(view.Players[0].Controls) != 0 || len(view.Players[1].Controls) != 1 {
		t.Errorf("Controls: gm=%v p1=%v", view.Players[0].Controls, view.Players[1].Controls)
	}
}
