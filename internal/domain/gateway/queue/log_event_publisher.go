package queue

import (
	"context"

	"go.uber.org/zap"

	"todo-list/internal/domain/model"
	"todo-list/pkg/log"
)

// LogEventPublisher only logs events. Used when no broker is configured.
type LogEventPublisher struct{}

var _ EventPublisher = LogEventPublisher{}

func (LogEventPublisher) Publish(ctx context.Context, event model.ToDoEvent) error {
	log.Debug("todo event",
		zap.String("type", string(event.Type)),
		zap.String("userId", event.UserID),
		zap.Strings("toDoIds", event.ToDoIDs),
	)
	return nil
}

func (LogEventPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"driver": "none", "message": "events are not published"},
	}
}
