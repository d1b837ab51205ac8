package flag

import (
	"context"
	"encoding/json"

	"todo-list/internal/domain/model"
)

// FlagGateway is a per-user, namespaced key-value store whose values are JSON
// objects. Writes merge into the stored object instead of replacing it.
type FlagGateway interface {
	// GetFlag returns the top level entries of the flag object. found is false
	// when the user has never written the flag.
	GetFlag(ctx context.Context, userID, namespace, key string) (entries map[string]json.RawMessage, found bool, err error)
	// SetFlag deep merges value into the stored flag object, creating it if needed.
	SetFlag(ctx context.Context, userID, namespace, key string, value map[string]any) error
	// DeleteFlagKey removes field from the flag object. Removing an absent field is a no-op.
	DeleteFlagKey(ctx context.Context, userID, namespace, key, field string) error
	// UnsetFlag removes the whole flag.
	UnsetFlag(ctx context.Context, userID, namespace, key string) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

func flagField(namespace, key string) string {
	return namespace + "." + key
}
