package model

import (
	"reflect"
	"testing"

	"todo-list/internal/domain/entity"
)

func TestUpdateToDoDTO(t *testing.T) {
	label := "fight the dragon"
	done := true

	tests := []struct {
		name       string
		dto        UpdateToDoDTO
		wantEmpty  bool
		wantFields map[string]any
		want       entity.ToDo
	}{
		{
			name:       "empty",
			dto:        UpdateToDoDTO{},
			wantEmpty:  true,
			wantFields: map[string]any{},
			want:       entity.ToDo{ID: "a", Label: "old", UserID: "u1"},
		},
		{
			name:       "done only",
			dto:        UpdateToDoDTO{IsDone: &done},
			wantFields: map[string]any{"isDone": true},
			want:       entity.ToDo{ID: "a", Label: "old", IsDone: true, UserID: "u1"},
		},
		{
			name:       "label and done",
			dto:        UpdateToDoDTO{Label: &label, IsDone: &done},
			wantFields: map[string]any{"label": label, "isDone": true},
			want:       entity.ToDo{ID: "a", Label: label, IsDone: true, UserID: "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dto.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty: got %v, want %v", got, tt.wantEmpty)
			}
			if got := tt.dto.Fields(); !reflect.DeepEqual(got, tt.wantFields) {
				t.Errorf("Fields: got %v, want %v", got, tt.wantFields)
			}
			base := entity.ToDo{ID: "a", Label: "old", UserID: "u1"}
			if got := tt.dto.ApplyTo(base); got != tt.want {
				t.Errorf("ApplyTo: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToDosOrdering(t *testing.T) {
	toDos := ToDos{
		"c": {ID: "c", Label: "b"},
		"a": {ID: "a", Label: "b"},
		"b": {ID: "b", Label: "a"},
	}

	if got, want := toDos.IDs(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs: got %v, want %v", got, want)
	}

	sorted := toDos.Sorted()
	gotIDs := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("Sorted: got %v, want %v", gotIDs, want)
	}
}
