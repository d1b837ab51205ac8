package sqs

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	urlCalls int
	urlErr   error
	sent     []*sqs.SendMessageInput
	sendErr  error
}

func (f *fakeSQSClient) GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.urlCalls++
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	url := "https://sqs.local/000000000000/" + *params.QueueName
	return &sqs.GetQueueUrlOutput{QueueUrl: &url}, nil
}

func (f *fakeSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{}, nil
}

func TestSendMessage(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)
	ctx := context.Background()

	body := map[string]string{"type": "created"}
	for i := 0; i < 2; i++ {
		if err := sender.SendMessage(ctx, "events", body, map[string]string{"userId": "u1"}); err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
	}

	if client.urlCalls != 1 {
		t.Errorf("GetQueueUrl calls: got %d, want 1", client.urlCalls)
	}
	if len(client.sent) != 2 {
		t.Fatalf("sent: got %d, want 2", len(client.sent))
	}
	first := client.sent[0]
	if *first.QueueUrl != "https://sqs.local/000000000000/events" {
		t.Errorf("QueueUrl: got %q", *first.QueueUrl)
	}
	if *first.MessageBody != `{"type":"created"}` {
		t.Errorf("MessageBody: got %q", *first.MessageBody)
	}
	if attr, ok := first.MessageAttributes["userId"]; !ok || *attr.StringValue != "u1" {
		t.Errorf("MessageAttributes: got %v", first.MessageAttributes)
	}
}

func TestSendMessageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	if err := NewSender(&fakeSQSClient{urlErr: boom}).SendMessage(ctx, "events", "x", nil); !errors.Is(err, boom) {
		t.Errorf("queue url failure: got %v", err)
	}
	if err := NewSender(&fakeSQSClient{sendErr: boom}).SendMessage(ctx, "events", "x", nil); !errors.Is(err, boom) {
		t.Errorf("send failure: got %v", err)
	}
	if err := NewSender(&fakeSQSClient{}).SendMessage(ctx, "events", make(chan int), nil); err == nil {
		t.Error("unserializable body: expected error")
	}
}
