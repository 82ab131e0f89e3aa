package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadRegistryEnabledFilter(t *testing.T) {
	path := writeFile(t, "publishers.yaml", `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: queue
    type: sqs
    events: [" Comment.Added "]
    sqs:
      uri: https://sqs.eu-central-1.amazonaws.com/1/activity
      region: eu-central-1
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "queue" {
		t.Fatalf("expected only queue enabled, got %#v", enabled)
	}
	if enabled[0].SQS.Region != "eu-central-1" {
		t.Fatalf("inline aws region not decoded: %#v", enabled[0].SQS)
	}
	if !enabled[0].Accepts(EventCommentAdded) || enabled[0].Accepts(EventThemeChanged) {
		t.Fatalf("events filter not applied: %#v", enabled[0].Events)
	}
	if cfg, ok := reg.ByID("http1"); !ok || cfg.HTTP.Method != httpDefaultMethod {
		t.Fatalf("expected http1 with default method, got %#v", cfg)
	}
}

func TestLoadRegistryEmptyPathHasNoPublishers(t *testing.T) {
	reg, err := LoadRegistry("  ")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.Enabled()) != 0 {
		t.Fatalf("expected no publishers")
	}
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "publishers.json", `{"publishers":[
		{"id":"a","type":"http","http":{"url":"https://x"}},
		{"id":"a","type":"http","http":{"url":"https://y"}}
	]}`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestValidatePublisherConfig(t *testing.T) {
	cases := []PublisherConfig{
		{ID: "h1", Type: TypeHTTP},
		{ID: "s1", Type: TypeSQS, SQS: &SQSPublisherConfig{QueueURL: "https://q"}},
		{ID: "n1", Type: TypeSNS, SNS: &SNSPublisherConfig{AWSConfig: AWSConfig{Region: "us-east-1"}}},
		{ID: "n2", Type: TypeSNS, SNS: &SNSPublisherConfig{TopicARN: "arn", AWSConfig: AWSConfig{Region: "us-east-1", AccessKeyID: "only-id"}}},
		{ID: "g1", Type: TypePubSub, PubSub: &PubSubPublisherConfig{ProjectID: "p"}},
	}
	for _, cfg := range cases {
		if err := validatePublisherConfig(sanitizePublisherConfig(cfg)); err == nil {
			t.Fatalf("expected validation error for %s", cfg.ID)
		}
	}
}
