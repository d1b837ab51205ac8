package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"todo-list/internal/domain/model"
	"todo-list/pkg/hooks"
	"todo-list/pkg/redis"
)

// ToDoEventProcessor turns to-do events received over pub/sub into
// todoListChanged hook calls, the trigger for re-rendering open views.
type ToDoEventProcessor struct {
	module string
	hooks  *hooks.Registry
}

var _ redis.MessageHandler = (*ToDoEventProcessor)(nil)

func NewToDoEventProcessor(module string, registry *hooks.Registry) *ToDoEventProcessor {
	return &ToDoEventProcessor{module: module, hooks: registry}
}

// HandleMessage implements the redis.MessageHandler interface
func (p *ToDoEventProcessor) HandleMessage(ctx context.Context, channel string, message string) error {
	var event model.ToDoEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		return fmt.Errorf("failed to unmarshal todo event from %s: %w", channel, err)
	}
	if event.Module != "" && event.Module != p.module {
		return nil
	}
	if event.UserID == "" {
		return fmt.Errorf("todo event %s has no user", event.ID)
	}
	return p.hooks.Call(ctx, hooks.ToDosChanged, event)
}
