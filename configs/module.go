package configs

import "fmt"

const (
	DefaultModuleID = "todo-list"
	DefaultToDosKey = "todos"
)

// ModuleFlags names the flag keys the module persists under its namespace.
type ModuleFlags struct {
	ToDos string
}

// ModuleTemplates holds the template paths handed to the form renderer.
type ModuleTemplates struct {
	// ToDoList is the host side template path, exposed in the view data.
	ToDoList string
	// ToDoListView and PlayerListView are the local template names.
	ToDoListView   string
	PlayerListView string
}

// ModuleConfig namespaces everything the module stores or renders.
// It is built once at start-up and passed to the components that need it.
type ModuleConfig struct {
	ID        string
	Flags     ModuleFlags
	Templates ModuleTemplates
}

// NewModuleConfig builds the module identity for id, falling back to
// DefaultModuleID when id is empty.
func NewModuleConfig(id string) *ModuleConfig {
	if id == "" {
		id = DefaultModuleID
	}
	return &ModuleConfig{
		ID: id,
		Flags: ModuleFlags{
			ToDos: DefaultToDosKey,
		},
		Templates: ModuleTemplates{
			ToDoList:       fmt.Sprintf("modules/%s/templates/todo-list.hbs", id),
			ToDoListView:   "todo-list",
			PlayerListView: "player-list",
		},
	}
}

// WithToDosFlag overrides the flag key used for the todo collection.
func (m *ModuleConfig) WithToDosFlag(key string) *ModuleConfig {
	if key != "" {
		m.Flags.ToDos = key
	}
	return m
}
