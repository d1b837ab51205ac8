package model

import "time"

type ToDoEventType string

const (
	ToDoCreated ToDoEventType = "created"
	ToDoUpdated ToDoEventType = "updated"
	ToDoDeleted ToDoEventType = "deleted"
)

// ToDoEvent notifies views that a user's collection changed and must be re-rendered.
type ToDoEvent struct {
	ID         string        `json:"id"`
	Type       ToDoEventType `json:"type"`
	Module     string        `json:"module"`
	UserID     string        `json:"userId"`
	ToDoIDs    []string      `json:"toDoIds"`
	OccurredAt time.Time     `json:"occurredAt"`
}
