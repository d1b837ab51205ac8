package entity

// ToDo is a single task in a user's list. UserID is a back-reference to the
// partition the entry is stored in.
type ToDo struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	IsDone bool   `json:"isDone"`
	UserID string `json:"userId"`
}
