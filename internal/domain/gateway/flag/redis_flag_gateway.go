package flag

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"todo-list/internal/domain/model"
	"todo-list/pkg/redis"
)

const healthTimeout = 2 * time.Second

// RedisFlagGateway stores every flag of a user in the hash <prefix>::flags::<userId>,
// one field per namespace.key holding the JSON document.
type RedisFlagGateway struct {
	client     *redis.Client
	maxRetries int
}

var _ FlagGateway = (*RedisFlagGateway)(nil)

func NewRedisFlagGateway(client *redis.Client, maxRetries int) *RedisFlagGateway {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RedisFlagGateway{client: client, maxRetries: maxRetries}
}

func (gateway *RedisFlagGateway) userKey(userID string) string {
	return gateway.client.Key("flags", userID)
}

func (gateway *RedisFlagGateway) GetFlag(ctx context.Context, userID, namespace, key string) (map[string]json.RawMessage, bool, error) {
	raw, found, err := gateway.client.HGet(ctx, gateway.userKey(userID), flagField(namespace, key))
	if err != nil || !found {
		return nil, false, err
	}
	entries, err := decodeEntries([]byte(raw))
	if err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (gateway *RedisFlagGateway) SetFlag(ctx context.Context, userID, namespace, key string, value map[string]any) error {
	return gateway.rewrite(ctx, userID, flagField(namespace, key), func(current []byte) ([]byte, bool, error) {
		merged, err := mergeDocument(current, value)
		return merged, true, err
	})
}

func (gateway *RedisFlagGateway) DeleteFlagKey(ctx context.Context, userID, namespace, key, field string) error {
	return gateway.rewrite(ctx, userID, flagField(namespace, key), func(current []byte) ([]byte, bool, error) {
		if current == nil {
			return nil, false, nil
		}
		return deleteDocumentKey(current, field)
	})
}

func (gateway *RedisFlagGateway) UnsetFlag(ctx context.Context, userID, namespace, key string) error {
	return gateway.client.HDel(ctx, gateway.userKey(userID), flagField(namespace, key))
}

func (gateway *RedisFlagGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	status, details := gateway.client.Health(ctx, healthTimeout)
	details["driver"] = "redis"
	return model.ComponentHealthStatus{Status: model.HealthStatus(status), Details: details}
}

// rewrite reads the stored document under WATCH, lets change compute the new
// one and writes it back in a MULTI block.
func (gateway *RedisFlagGateway) rewrite(ctx context.Context, userID, field string, change func(current []byte) ([]byte, bool, error)) error {
	hashKey := gateway.userKey(userID)

	return gateway.client.Update(ctx, gateway.maxRetries, func(tx *goredis.Tx) error {
		var current []byte
		raw, err := tx.HGet(ctx, hashKey, field).Result()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return err
		default:
			current = []byte(raw)
		}

		updated, changed, err := change(current)
		if err != nil || !changed {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, hashKey, field, string(updated))
			return nil
		})
		return err
	}, hashKey)
}
