package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"todo-list/pkg/log"
)

// MessageHandler processes Redis pub/sub messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, channel string, message string) error
}

// HandlerFunc adapts a function to MessageHandler
type HandlerFunc func(ctx context.Context, channel string, message string) error

var _ MessageHandler = HandlerFunc(nil)

// HandleMessage implements the MessageHandler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, channel string, message string) error {
	return f(ctx, channel, message)
}

// Publisher publishes JSON payloads on namespaced channels
type Publisher struct {
	client *Client
}

// NewPublisher creates a new publisher
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Channel returns the namespaced channel name for channel
func (p *Publisher) Channel(channel string) string {
	return p.client.Key(channel)
}

// PublishJSON marshals message and publishes it to the namespaced channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.Publish(ctx, p.Channel(channel), jsonData)
}

// Subscriber listens on namespaced channels and hands each message to a handler
type Subscriber struct {
	client            *Client
	handler           MessageHandler
	channels          []string
	messagesProcessed int64
	isRunning         int32
	mu                sync.Mutex
	sub               *redis.PubSub
}

// NewSubscriber creates a subscriber for the given channels
func NewSubscriber(client *Client, handler MessageHandler, channels ...string) (*Subscriber, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("at least one channel is required")
	}

	namespaced := make([]string, len(channels))
	for i, channel := range channels {
		namespaced[i] = client.Key(channel)
	}

	return &Subscriber{
		client:   client,
		handler:  handler,
		channels: namespaced,
	}, nil
}

// Start subscribes and processes messages until ctx is canceled or Close is called.
// The subscription is confirmed before Start begins reading.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	s.sub = s.client.GetClient().Subscribe(ctx, s.channels...)
	sub := s.sub
	s.mu.Unlock()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %v: %w", s.channels, err)
	}

	atomic.StoreInt32(&s.isRunning, 1)
	defer atomic.StoreInt32(&s.isRunning, 0)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.handleMessage(ctx, msg)
		}
	}
}

func (s *Subscriber) handleMessage(ctx context.Context, msg *redis.Message) {
	if msg == nil {
		return
	}

	if err := s.handler.HandleMessage(ctx, msg.Channel, msg.Payload); err != nil {
		log.Error("error processing pub/sub message", zap.String("channel", msg.Channel), zap.Error(err))
		return
	}
	atomic.AddInt64(&s.messagesProcessed, 1)
}

// Close closes the subscription, which ends Start
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		return s.sub.Close()
	}
	return nil
}

// IsRunning reports whether Start is consuming messages
func (s *Subscriber) IsRunning() bool {
	return atomic.LoadInt32(&s.isRunning) == 1
}

// MessagesProcessed returns the number of messages handled without error
func (s *Subscriber) MessagesProcessed() int64 {
	return atomic.LoadInt64(&s.messagesProcessed)
}
