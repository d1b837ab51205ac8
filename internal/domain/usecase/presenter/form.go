package presenter

import (
	"fmt"
	"net/url"
	"strings"

	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/msg"
)

// Form fields that drive an action instead of describing a todo.
const (
	fieldAction = "action"
	fieldLabel  = "label"
	fieldToDoID = "toDoId"

	actionUpdate = "update"
	actionCreate = "create"
	actionDelete = "delete"
)

var controlFields = map[string]bool{fieldAction: true, fieldLabel: true, fieldToDoID: true}

// expandObject turns flattened dotted paths into nested maps:
// {"a.label": "x"} becomes {"a": {"label": "x"}}.
func expandObject(flat map[string]string) (map[string]any, error) {
	expanded := make(map[string]any)
	for path, value := range flat {
		parts := strings.Split(path, ".")
		node := expanded
		for i, part := range parts[:len(parts)-1] {
			next, exists := node[part]
			if !exists {
				child := make(map[string]any)
				node[part] = child
				node = child
				continue
			}
			child, ok := next.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("field %s conflicts with %s", path, strings.Join(parts[:i+1], "."))
			}
			node = child
		}
		leaf := parts[len(parts)-1]
		if _, exists := node[leaf]; exists {
			return nil, fmt.Errorf("field %s conflicts with a nested field", path)
		}
		node[leaf] = value
	}
	return expanded, nil
}

// ExpandForm converts the submitted todo fields (<id>.label, <id>.isDone)
// into a batch update. A checkbox posts a hidden "false" followed by "on"
// when ticked, so isDone is true when any of its values is truthy.
func ExpandForm(form url.Values) (model.ToDoUpdates, error) {
	flat := make(map[string]string, len(form))
	for field, values := range form {
		if controlFields[field] || len(values) == 0 {
			continue
		}
		if strings.HasSuffix(field, ".isDone") {
			flat[field] = fmt.Sprint(anyTruthy(values))
			continue
		}
		flat[field] = values[len(values)-1]
	}

	expanded, err := expandObject(flat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", todo.ErrInvalidToDo, err)
	}

	updates := make(model.ToDoUpdates, len(expanded))
	for id, raw := range expanded {
		fields, ok := raw.(map[string]any)
		if !ok {
			return nil, unknownField(id)
		}

		var update model.UpdateToDoDTO
		for name, value := range fields {
			text, ok := value.(string)
			if !ok {
				return nil, unknownField(id + "." + name)
			}
			switch name {
			case "label":
				label := text
				update.Label = &label
			case "isDone":
				done := text == "true"
				update.IsDone = &done
			default:
				return nil, unknownField(id + "." + name)
			}
		}
		updates[id] = update
	}
	return updates, nil
}

func anyTruthy(values []string) bool {
	for _, value := range values {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "on", "true", "1":
			return true
		}
	}
	return false
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %s", todo.ErrInvalidToDo, msg.GetMessage("todo-list.error.unknown-field", field))
}
