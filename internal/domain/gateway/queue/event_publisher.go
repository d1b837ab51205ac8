package queue

import (
	"context"

	"todo-list/internal/domain/model"
)

// ToDoChannel is the pub/sub channel, relative to the key prefix, that carries to-do events.
const ToDoChannel = "todos"

// EventPublisher announces changes of a user's to-do collection.
type EventPublisher interface {
	Publish(ctx context.Context, event model.ToDoEvent) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
