package todo

import (
	"context"

	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/model"
)

type UseCase interface {
	// GetToDosForUser returns the user's collection keyed by todo id. A user
	// who never stored a todo gets an empty collection.
	GetToDosForUser(ctx context.Context, userID string) (model.ToDos, error)
	// AllToDos unions the collections of every registered user. On an id
	// collision the user listed later wins.
	AllToDos(ctx context.Context) (model.ToDos, error)
	CreateToDo(ctx context.Context, userID string, data model.CreateToDoDTO) (*entity.ToDo, error)
	// UpdateToDo finds the owner of id and merges data into that entry.
	UpdateToDo(ctx context.Context, id string, data model.UpdateToDoDTO) (*entity.ToDo, error)
	// UpdateUserToDos merges a batch of partial todos into one user's
	// collection and returns the resulting collection.
	UpdateUserToDos(ctx context.Context, userID string, updates model.ToDoUpdates) (model.ToDos, error)
	DeleteToDo(ctx context.Context, id string) error
}
