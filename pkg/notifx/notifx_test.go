package notifx

import (
	"context"
	"strings"
	"testing"
)

// recordingSender captures sent messages and their options
type recordingSender struct {
	sent []EmailMessage
	opts []Option
}

func (s *recordingSender) SendEmail(_ context.Context, msg EmailMessage, opts ...Option) error {
	s.sent = append(s.sent, msg)
	s.opts = append(s.opts, opts...)
	return nil
}

func TestSendEmailValidation(t *testing.T) {
	sender := &recordingSender{}
	client := NewClient(sender)

	err := client.SendEmail(context.Background(), EmailMessage{Subject: "s"})
	if err == nil {
		t.Fatal("expected error for missing recipients")
	}

	err = client.SendEmail(context.Background(), EmailMessage{To: []string{"a@example.com"}})
	if err == nil {
		t.Fatal("expected error for empty subject")
	}

	if len(sender.sent) != 0 {
		t.Errorf("invalid messages should not reach the provider, got %d", len(sender.sent))
	}
}

func TestSendEmail(t *testing.T) {
	sender := &recordingSender{}
	client := NewClient(sender)

	msg := EmailMessage{
		To:       []string{"a@example.com"},
		Subject:  "Quick question",
		TextBody: "Hi there.",
	}

	if err := client.SendEmail(context.Background(), msg); err != nil {
		t.Fatalf("SendEmail failed: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 sent message, got %d", len(sender.sent))
	}
	if sender.sent[0].Subject != "Quick question" {
		t.Errorf("unexpected subject: %q", sender.sent[0].Subject)
	}
}

func TestSendEmailOptionsReachProvider(t *testing.T) {
	sender := &recordingSender{}
	client := NewClient(sender)

	msg := EmailMessage{To: []string{"a@example.com"}, Subject: "s"}
	err := client.SendEmail(context.Background(), msg,
		WithTags(map[string]string{"slot": "2", "variant": "1"}),
		WithConfigID("warmup-set"))
	if err != nil {
		t.Fatalf("SendEmail failed: %v", err)
	}

	var so SendOptions
	for _, opt := range sender.opts {
		opt(&so)
	}

	if so.Tags["slot"] != "2" || so.Tags["variant"] != "1" {
		t.Errorf("tags not passed through: %+v", so.Tags)
	}
	if so.ConfigID != "warmup-set" {
		t.Errorf("config id not passed through: %q", so.ConfigID)
	}
}

func TestSendTemplatedEmail(t *testing.T) {
	sender := &recordingSender{}
	client := NewClient(sender)

	if err := client.RegisterTemplate("draft", "Hi {{.Name}},\n\n{{.Body}}"); err != nil {
		t.Fatalf("RegisterTemplate failed: %v", err)
	}

	msg := EmailMessage{To: []string{"a@example.com"}, Subject: "s"}
	data := map[string]string{"Name": "Jane", "Body": "The robots are ready."}

	if err := client.SendTemplatedEmail(context.Background(), "draft", data, msg); err != nil {
		t.Fatalf("SendTemplatedEmail failed: %v", err)
	}

	body := sender.sent[0].TextBody
	if !strings.Contains(body, "Hi Jane,") || !strings.Contains(body, "robots are ready") {
		t.Errorf("unexpected rendered body: %q", body)
	}
}

func TestSendTemplatedEmailUnknownTemplate(t *testing.T) {
	client := NewClient(&recordingSender{})

	err := client.SendTemplatedEmail(context.Background(), "nope", nil,
		EmailMessage{To: []string{"a@example.com"}, Subject: "s"})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestTemplateRegistryBadTemplate(t *testing.T) {
	r := NewTemplateRegistry()
	if err := r.Register("bad", "{{.Unclosed"); err == nil {
		t.Fatal("expected parse error")
	}
}
