package redisdb

import (
	"todo-list/pkg/redis"
	"todo-list/pkg/resource"
)

// NewClient connects to the Redis server configured under app.redis.*,
// namespacing keys with keyPrefix.
func NewClient(keyPrefix string) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithKeyPrefix(keyPrefix)

	return redis.NewClient(config)
}
