package queue

import (
	"context"
	"time"

	"todo-list/internal/domain/model"
	"todo-list/pkg/redis"
)

type RedisEventPublisher struct {
	client    *redis.Client
	publisher *redis.Publisher
}

var _ EventPublisher = (*RedisEventPublisher)(nil)

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{client: client, publisher: redis.NewPublisher(client)}
}

func (gateway *RedisEventPublisher) Publish(ctx context.Context, event model.ToDoEvent) error {
	return gateway.publisher.PublishJSON(ctx, ToDoChannel, event)
}

func (gateway *RedisEventPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	status, details := gateway.client.Health(ctx, 2*time.Second)
	details["driver"] = "redis"
	details["channel"] = gateway.publisher.Channel(ToDoChannel)
	return model.ComponentHealthStatus{Status: model.HealthStatus(status), Details: details}
}
