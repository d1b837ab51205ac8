package presenter

import (
	"context"
	"net/url"

	"todo-list/internal/domain/model"
)

// UseCase backs the todo list form and the player list it is opened from.
type UseCase interface {
	GetData(ctx context.Context, userID string) (*model.ToDoListView, error)
	// UpdateObject applies a submitted form and returns the re-rendered view.
	// The form stays open after a submit.
	UpdateObject(ctx context.Context, userID string, form url.Values) (*model.ToDoListView, error)
	PlayerList(ctx context.Context, currentUserID string) (*model.PlayerListView, error)
}
