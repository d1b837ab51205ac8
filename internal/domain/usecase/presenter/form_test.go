package presenter

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"todo-list/internal/domain/usecase/todo"
)

func TestExpandObject(t *testing.T) {
	got, err := expandObject(map[string]string{"a.label": "x", "a.isDone": "true", "b.label": "y"})
	if err != nil {
		t.Fatalf("expandObject: %v", err)
	}
	want := map[string]any{
		"a": map[string]any{"label": "x", "isDone": "true"},
		"b": map[string]any{"label": "y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandObject: got %v, want %v", got, want)
	}

	if _, err := expandObject(map[string]string{"a": "x", "a.label": "y"}); err == nil {
		t.Error("expandObject: expected conflict error")
	}
}

func TestExpandForm(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantLabel map[string]string
		wantDone  map[string]bool
		wantErr   bool
	}{
		{
			name:      "label and ticked checkbox",
			form:      url.Values{"a.label": {"x"}, "a.isDone": {"false", "on"}, "action": {"update"}},
			wantLabel: map[string]string{"a": "x"},
			wantDone:  map[string]bool{"a": true},
		},
		{
			name:     "unticked checkbox",
			form:     url.Values{"a.isDone": {"false"}},
			wantDone: map[string]bool{"a": false},
		},
		{
			name:    "unknown property",
			form:    url.Values{"a.color": {"red"}},
			wantErr: true,
		},
		{
			name:    "bare field",
			form:    url.Values{"color": {"red"}},
			wantErr: true,
		},
		{
			name:    "too deep",
			form:    url.Values{"a.label.en": {"x"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates, err := ExpandForm(tt.form)
			if tt.wantErr {
				if !errors.Is(err, todo.ErrInvalidToDo) {
					t.Errorf("ExpandForm: got %v, want ErrInvalidToDo", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpandForm: %v", err)
			}
			for id, label := range tt.wantLabel {
				if got := updates[id].Label; got == nil || *got != label {
					t.Errorf("%s label: got %v, want %q", id, got, label)
				}
			}
			for id, done := range tt.wantDone {
				if got := updates[id].IsDone; got == nil || *got != done {
					t.Errorf("%s isDone: got %v, want %v", id, got, done)
				}
			}
		})
	}
}
