package flag

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"todo-list/internal/domain/model"
	"todo-list/pkg/redis"
)

func newRedisGateway(t *testing.T) *RedisFlagGateway {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port: %v", err)
	}
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(port).WithKeyPrefix("todo-list"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFlagGateway(client, 3)
}

func gateways(t *testing.T) map[string]FlagGateway {
	return map[string]FlagGateway{
		"memory": NewMemoryFlagGateway(),
		"redis":  newRedisGateway(t),
	}
}

func labelOf(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var entry struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		t.Fatalf("decode entry %s: %v", raw, err)
	}
	return entry.Label
}

func TestFlagGatewayLifecycle(t *testing.T) {
	ctx := context.Background()

	for name, gateway := range gateways(t) {
		t.Run(name, func(t *testing.T) {
			if _, found, err := gateway.GetFlag(ctx, "u1", "todo-list", "todos"); err != nil || found {
				t.Fatalf("GetFlag before write: found=%v err=%v", found, err)
			}

			if err := gateway.SetFlag(ctx, "u1", "todo-list", "todos", map[string]any{
				"a": map[string]any{"id": "a", "label": "first", "isDone": false},
			}); err != nil {
				t.Fatalf("SetFlag: %v", err)
			}
			if err := gateway.SetFlag(ctx, "u1", "todo-list", "todos", map[string]any{
				"b": map[string]any{"id": "b", "label": "second"},
				"a": map[string]any{"label": "renamed"},
			}); err != nil {
				t.Fatalf("SetFlag merge: %v", err)
			}

			entries, found, err := gateway.GetFlag(ctx, "u1", "todo-list", "todos")
			if err != nil || !found {
				t.Fatalf("GetFlag: found=%v err=%v", found, err)
			}
			if len(entries) != 2 {
				t.Fatalf("GetFlag: got %d entries, want 2", len(entries))
			}
			if got := labelOf(t, entries["a"]); got != "renamed" {
				t.Errorf("label a: got %q, want renamed", got)
			}

			if _, found, _ := gateway.GetFlag(ctx, "u2", "todo-list", "todos"); found {
				t.Error("GetFlag for other user: got found")
			}
			if _, found, _ := gateway.GetFlag(ctx, "u1", "other", "todos"); found {
				t.Error("GetFlag for other namespace: got found")
			}

			if err := gateway.DeleteFlagKey(ctx, "u1", "todo-list", "todos", "a"); err != nil {
				t.Fatalf("DeleteFlagKey: %v", err)
			}
			if err := gateway.DeleteFlagKey(ctx, "u1", "todo-list", "todos", "missing"); err != nil {
				t.Fatalf("DeleteFlagKey missing field: %v", err)
			}
			if err := gateway.DeleteFlagKey(ctx, "u9", "todo-list", "todos", "a"); err != nil {
				t.Fatalf("DeleteFlagKey missing flag: %v", err)
			}
			entries, _, _ = gateway.GetFlag(ctx, "u1", "todo-list", "todos")
			if _, ok := entries["a"]; ok || len(entries) != 1 {
				t.Errorf("after DeleteFlagKey: got %v", entries)
			}
			if _, found, _ := gateway.GetFlag(ctx, "u9", "todo-list", "todos"); found {
				t.Error("DeleteFlagKey created a flag")
			}

			if err := gateway.UnsetFlag(ctx, "u1", "todo-list", "todos"); err != nil {
				t.Fatalf("UnsetFlag: %v", err)
			}
			if _, found, _ := gateway.GetFlag(ctx, "u1", "todo-list", "todos"); found {
				t.Error("GetFlag after UnsetFlag: got found")
			}

			if status := gateway.Health(ctx); status.Status != model.StatusUp {
				t.Errorf("Health: got %s", status.Status)
			}
		})
	}
}
