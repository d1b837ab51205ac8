package user

import (
	"context"

	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/model"
)

// UserGateway is the registry of known users.
type UserGateway interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByID returns nil and no error when the user does not exist.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Save(ctx context.Context, user entity.User) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
