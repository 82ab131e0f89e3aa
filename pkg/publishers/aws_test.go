package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/samvad-hq/akhbar-tech/internal/logger"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func likedEvent() Event {
	evt := NewEvent(EventCommentLiked, "visitor-1")
	evt.ArticleID = "a1"
	evt.CommentID = "2"
	evt.Likes = 4
	return evt
}

func TestSQSPublisherSendsEvent(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{id: "q", queueURL: "https://example.com/queue", client: client, log: logger.NopLogger{}}

	if err := pub.Publish(context.Background(), likedEvent()); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["event_type"]
	if !ok || aws.ToString(attr.StringValue) != EventCommentLiked {
		t.Fatalf("event_type attribute missing or wrong: %#v", attr)
	}
	if aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"visitor_id":"visitor-1"`) {
		t.Fatalf("MessageBody missing visitor_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSPublisherSendError(t *testing.T) {
	pub := &sqsPublisher{id: "q", client: &fakeSQSClient{err: errors.New("boom")}, log: logger.NopLogger{}}
	if err := pub.Publish(context.Background(), likedEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestSNSPublisherSendsEvent(t *testing.T) {
	client := &fakeSNSClient{}
	pub := &snsPublisher{id: "t", topicARN: "arn:aws:sns:::topic", client: client, log: logger.NopLogger{}}

	if err := pub.Publish(context.Background(), likedEvent()); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	if attr := client.input.MessageAttributes["event_type"]; aws.ToString(attr.StringValue) != EventCommentLiked {
		t.Fatalf("event_type attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.Message), `"likes":4`) {
		t.Fatalf("Message missing likes: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSPublisherSendError(t *testing.T) {
	pub := &snsPublisher{id: "t", client: &fakeSNSClient{err: errors.New("boom")}, log: logger.NopLogger{}}
	if err := pub.Publish(context.Background(), likedEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestLoadAWSConfigUsesStaticCredentials(t *testing.T) {
	cfg, err := loadAWSConfig(context.Background(), AWSConfig{
		Region:          "eu-central-1",
		AccessKeyID:     "AKID",
		SecretAccessKey: "SECRET",
	})
	if err != nil {
		t.Fatalf("loadAWSConfig: %v", err)
	}
	if cfg.Region != "eu-central-1" {
		t.Fatalf("Region = %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if creds.AccessKeyID != "AKID" {
		t.Fatalf("AccessKeyID = %s", creds.AccessKeyID)
	}
}
