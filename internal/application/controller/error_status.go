package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, todo.ErrUserNotFound), errors.Is(err, todo.ErrToDoNotFound):
		return http.StatusNotFound
	case errors.Is(err, todo.ErrInvalidToDo):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON answers client errors with their message. Store failures are
// logged and answered with a generic message.
func errorJSON(c echo.Context, err error) error {
	status := errorStatus(err)
	if status != http.StatusInternalServerError {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	log.Error(msg.GetMessage("app.internal-error"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
	return c.JSON(status, map[string]string{"error": msg.GetMessage("app.internal-error")})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.invalid-body")})
}
