package model

import (
	"sort"

	"todo-list/internal/domain/entity"
)

// ToDos maps todo id to todo for a single user, or for every user in the all-todos view.
type ToDos map[string]entity.ToDo

// IDs returns the todo ids in ascending order.
func (t ToDos) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sorted returns the todos ordered by label, then id.
func (t ToDos) Sorted() []entity.ToDo {
	list := make([]entity.ToDo, 0, len(t))
	for _, toDo := range t {
		list = append(list, toDo)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Label != list[j].Label {
			return list[i].Label < list[j].Label
		}
		return list[i].ID < list[j].ID
	})
	return list
}

type CreateToDoDTO struct {
	Label  string `json:"label"`
	IsDone *bool  `json:"isDone,omitempty"`
}

// UpdateToDoDTO is a partial todo. Nil fields are left untouched by a merge.
type UpdateToDoDTO struct {
	Label  *string `json:"label,omitempty"`
	IsDone *bool   `json:"isDone,omitempty"`
}

// ToDoUpdates maps todo id to the partial update for that todo.
type ToDoUpdates map[string]UpdateToDoDTO

// IsEmpty reports whether the update carries no field.
func (dto UpdateToDoDTO) IsEmpty() bool {
	return dto.Label == nil && dto.IsDone == nil
}

// Fields returns the set fields keyed by their JSON name.
func (dto UpdateToDoDTO) Fields() map[string]any {
	fields := make(map[string]any, 2)
	if dto.Label != nil {
		fields["label"] = *dto.Label
	}
	if dto.IsDone != nil {
		fields["isDone"] = *dto.IsDone
	}
	return fields
}

// ApplyTo returns toDo with the set fields of dto merged in.
func (dto UpdateToDoDTO) ApplyTo(toDo entity.ToDo) entity.ToDo {
	if dto.Label != nil {
		toDo.Label = *dto.Label
	}
	if dto.IsDone != nil {
		toDo.IsDone = *dto.IsDone
	}
	return toDo
}
