package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port: %v", err)
	}

	client, err := NewClient(NewRedisConfig().WithHost(mr.Host()).WithPort(port).WithKeyPrefix("todo-list"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"defaults", NewRedisConfig(), false},
		{"empty host", NewRedisConfig().WithHost(""), true},
		{"port out of range", NewRedisConfig().WithPort(70000), true},
		{"database out of range", NewRedisConfig().WithDatabase(16), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKey(t *testing.T) {
	client, _ := newTestClient(t)

	if got := client.Key("flags", "u1"); got != "todo-list::flags::u1" {
		t.Errorf("Key: got %q", got)
	}

	bare, err := NewClient(NewRedisConfig())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer bare.Close()
	if got := bare.Key("users"); got != "users" {
		t.Errorf("Key without prefix: got %q", got)
	}
}

func TestHashOperations(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, found, err := client.HGet(ctx, "h", "missing"); err != nil || found {
		t.Fatalf("HGet missing: found=%v err=%v", found, err)
	}

	if err := client.HSet(ctx, "h", "a", "1", "b", "2"); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	value, found, err := client.HGet(ctx, "h", "a")
	if err != nil || !found || value != "1" {
		t.Fatalf("HGet a: value=%q found=%v err=%v", value, found, err)
	}

	if err := client.HDel(ctx, "h", "a"); err != nil {
		t.Fatalf("HDel: %v", err)
	}
	all, err := client.HGetAll(ctx, "h")
	if err != nil {
		t.Fatalf("HGetAll: %v", err)
	}
	if len(all) != 1 || all["b"] != "2" {
		t.Errorf("HGetAll: got %v", all)
	}
}

func TestUpdate(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	err := client.Update(ctx, 3, func(tx *goredis.Tx) error {
		_, err := tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, "h", "field", "value")
			return nil
		})
		return err
	}, "h")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	value, _, _ := client.HGet(ctx, "h", "field")
	if value != "value" {
		t.Errorf("HGet after Update: got %q", value)
	}

	boom := errors.New("boom")
	if err := client.Update(ctx, 3, func(tx *goredis.Tx) error { return boom }, "h"); !errors.Is(err, boom) {
		t.Errorf("Update with failing fn: got %v, want boom", err)
	}
}

func TestLock(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	first := NewLock(client, "summary", time.Minute)
	second := NewLock(client, "summary", time.Minute)

	if first.Key() != "todo-list::locks::summary" {
		t.Errorf("Key: got %q", first.Key())
	}

	acquired, err := first.TryLock(ctx)
	if err != nil || !acquired {
		t.Fatalf("first TryLock: acquired=%v err=%v", acquired, err)
	}
	acquired, err = second.TryLock(ctx)
	if err != nil || acquired {
		t.Fatalf("second TryLock: acquired=%v err=%v", acquired, err)
	}

	if err := second.Unlock(ctx); !errors.Is(err, ErrLockNotHeld) {
		t.Errorf("second Unlock: got %v, want ErrLockNotHeld", err)
	}
	if err := first.Unlock(ctx); err != nil {
		t.Errorf("first Unlock: %v", err)
	}
	if acquired, _ := second.TryLock(ctx); !acquired {
		t.Error("second TryLock after release: got false")
	}
}

func TestHealth(t *testing.T) {
	client, mr := newTestClient(t)

	status, details := client.Health(context.Background(), time.Second)
	if status != StatusUp {
		t.Fatalf("Health: got %s (%v)", status, details)
	}

	mr.SetError("ERR server unavailable")
	status, _ = client.Health(context.Background(), time.Second)
	if status != StatusDown {
		t.Errorf("Health with server error: got %s, want DOWN", status)
	}
}

func TestPublishSubscribe(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)
	sub, err := NewSubscriber(client, HandlerFunc(func(ctx context.Context, channel string, message string) error {
		received <- channel + "|" + message
		return nil
	}), "todos")
	if err != nil {
		t.Fatalf("NewSubscriber: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- sub.Start(ctx) }()

	publisher := NewPublisher(client)
	deadline := time.After(2 * time.Second)
	for !sub.IsRunning() {
		select {
		case <-deadline:
			t.Fatal("subscriber did not start")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := publisher.PublishJSON(ctx, "todos", map[string]string{"type": "created"}); err != nil {
		t.Fatalf("PublishJSON: %v", err)
	}

	select {
	case got := <-received:
		if got != `todo-list::todos|{"type":"created"}` {
			t.Errorf("received: got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}

	cancel()
	_ = sub.Close()
	<-done
	if sub.MessagesProcessed() != 1 {
		t.Errorf("MessagesProcessed: got %d, want 1", sub.MessagesProcessed())
	}
}
