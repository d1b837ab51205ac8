package user

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/model"
	"todo-list/pkg/redis"
)

// RedisUserGateway stores users as JSON in the hash <prefix>::users keyed by id.
type RedisUserGateway struct {
	client *redis.Client
}

var _ UserGateway = (*RedisUserGateway)(nil)

func NewRedisUserGateway(client *redis.Client) *RedisUserGateway {
	return &RedisUserGateway{client: client}
}

func (gateway *RedisUserGateway) key() string {
	return gateway.client.Key("users")
}

func (gateway *RedisUserGateway) FindAll(ctx context.Context) ([]entity.User, error) {
	values, err := gateway.client.HGetAll(ctx, gateway.key())
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(values))
	for id, raw := range values {
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", id, err)
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (gateway *RedisUserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	raw, found, err := gateway.client.HGet(ctx, gateway.key(), id)
	if err != nil || !found {
		return nil, err
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return &user, nil
}

func (gateway *RedisUserGateway) Save(ctx context.Context, user entity.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return gateway.client.HSet(ctx, gateway.key(), user.ID, string(encoded))
}

func (gateway *RedisUserGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	status, details := gateway.client.Health(ctx, 2*time.Second)
	details["driver"] = "redis"
	return model.ComponentHealthStatus{Status: model.HealthStatus(status), Details: details}
}
