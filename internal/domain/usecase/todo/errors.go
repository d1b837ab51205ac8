package todo

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrToDoNotFound = errors.New("todo not found")
	ErrInvalidToDo  = errors.New("invalid todo")
)
