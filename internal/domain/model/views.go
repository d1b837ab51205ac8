package model

import "todo-list/internal/domain/entity"

// ToDoListView is the data handed to the todo list form.
type ToDoListView struct {
	UserID   string            `json:"userId"`
	UserName string            `json:"userName"`
	Template string            `json:"template"`
	Action   string            `json:"action"`
	ToDos    []entity.ToDo     `json:"todos"`
	Labels   map[string]string `json:"labels"`
}

// Control is a button injected into a rendered view.
type Control struct {
	Class string `json:"class"`
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

type PlayerListItem struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Active   bool      `json:"active"`
	Controls []Control `json:"controls"`
}

// PlayerListView is the user list, built before the renderPlayerList hook runs
// so handlers can inject controls.
type PlayerListView struct {
	CurrentUserID string           `json:"currentUserId"`
	Players       []PlayerListItem `json:"players"`
}
