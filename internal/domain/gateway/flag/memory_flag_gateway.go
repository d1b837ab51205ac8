package flag

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"todo-list/internal/domain/model"
)

// MemoryFlagGateway keeps flag documents in process memory.
type MemoryFlagGateway struct {
	mu    sync.RWMutex
	flags map[string]map[string][]byte
}

var _ FlagGateway = (*MemoryFlagGateway)(nil)

func NewMemoryFlagGateway() *MemoryFlagGateway {
	return &MemoryFlagGateway{flags: make(map[string]map[string][]byte)}
}

func (gateway *MemoryFlagGateway) GetFlag(ctx context.Context, userID, namespace, key string) (map[string]json.RawMessage, bool, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	raw, ok := gateway.flags[userID][flagField(namespace, key)]
	if !ok {
		return nil, false, nil
	}
	entries, err := decodeEntries(raw)
	return entries, err == nil, err
}

func (gateway *MemoryFlagGateway) SetFlag(ctx context.Context, userID, namespace, key string, value map[string]any) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	field := flagField(namespace, key)
	merged, err := mergeDocument(gateway.flags[userID][field], value)
	if err != nil {
		return err
	}
	if gateway.flags[userID] == nil {
		gateway.flags[userID] = make(map[string][]byte)
	}
	gateway.flags[userID][field] = merged
	return nil
}

func (gateway *MemoryFlagGateway) DeleteFlagKey(ctx context.Context, userID, namespace, key, field string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	flagKey := flagField(namespace, key)
	current, ok := gateway.flags[userID][flagKey]
	if !ok {
		return nil
	}
	updated, changed, err := deleteDocumentKey(current, field)
	if err != nil || !changed {
		return err
	}
	gateway.flags[userID][flagKey] = updated
	return nil
}

func (gateway *MemoryFlagGateway) UnsetFlag(ctx context.Context, userID, namespace, key string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	delete(gateway.flags[userID], flagField(namespace, key))
	return nil
}

func (gateway *MemoryFlagGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	return model.UpStatus(map[string]string{
		"driver": "memory",
		"users":  strconv.Itoa(len(gateway.flags)),
	})
}
