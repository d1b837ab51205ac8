package queue

import (
	"context"
	"time"

	"todo-list/internal/domain/model"
)

// MessageSender is the part of pkg/sqs.Sender the publisher needs.
type MessageSender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
	QueueURL(ctx context.Context, queueName string) (string, error)
}

type SQSEventPublisher struct {
	sender    MessageSender
	queueName string
}

var _ EventPublisher = (*SQSEventPublisher)(nil)

func NewSQSEventPublisher(sender MessageSender, queueName string) *SQSEventPublisher {
	return &SQSEventPublisher{sender: sender, queueName: queueName}
}

func (gateway *SQSEventPublisher) Publish(ctx context.Context, event model.ToDoEvent) error {
	return gateway.sender.SendMessage(ctx, gateway.queueName, event, map[string]string{
		"userId":    event.UserID,
		"eventType": string(event.Type),
	})
}

func (gateway *SQSEventPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{"driver": "sqs", "queue": gateway.queueName}
	url, err := gateway.sender.QueueURL(ctx, gateway.queueName)
	if err != nil {
		return model.DownStatus(err, details)
	}
	details["url"] = url
	return model.UpStatus(details)
}
