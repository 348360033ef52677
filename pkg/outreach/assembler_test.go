package outreach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/coldcopy/coldcopy/pkg/ai/llm"
	"github.com/coldcopy/coldcopy/pkg/errx"
	"github.com/coldcopy/coldcopy/pkg/research"
)

// mockLLM is a scripted LLM for testing
type mockLLM struct {
	replies     []string
	err         error
	calls       int
	prompts     []string
	lastOptions *llm.ChatOptions
}

func (m *mockLLM) Chat(_ context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	m.calls++

	options := llm.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	m.lastOptions = options

	for _, msg := range messages {
		if msg.Role == llm.RoleUser {
			m.prompts = append(m.prompts, msg.Content)
		}
	}

	if m.err != nil {
		return llm.Response{}, m.err
	}

	reply := m.replies[0]
	if len(m.replies) > 1 {
		m.replies = m.replies[1:]
	}

	return llm.Response{
		Message: llm.NewAssistantMessage(reply),
	}, nil
}

// mockResearcher returns a canned summary
type mockResearcher struct {
	summary research.Summary
	err     error
	calls   int
	website string
}

func (m *mockResearcher) Research(_ context.Context, _, website string) (research.Summary, error) {
	m.calls++
	m.website = website
	if m.err != nil {
		return research.Summary{}, m.err
	}
	return m.summary, nil
}

func validRequest() GenerationRequest {
	return GenerationRequest{
		Target:    "John Smith, CEO at TechCorp",
		Offer:     "AI automation services",
		Angle:     "reduce manual work by 70%",
		Framework: FrameworkPAS,
		Variants:  1,
		Sender:    "Alex Rivera",
	}
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errx.Error, got %T: %v", err, err)
	}
	return e.Code
}

func TestGenerateSingleTemplateDraft(t *testing.T) {
	a := NewAssembler()

	drafts, err := a.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	if d.Subject == "" {
		t.Error("expected non-empty subject")
	}
	if d.Body == "" {
		t.Error("expected non-empty body")
	}
	if !strings.Contains(d.Body, "TechCorp") {
		t.Errorf("body should mention the company, got:\n%s", d.Body)
	}
	if !strings.Contains(d.Body, "AI automation services") {
		t.Errorf("body should mention the offer, got:\n%s", d.Body)
	}
	if d.ID == "" {
		t.Error("expected a draft id")
	}
	if d.Slot != 1 || d.Variant != 1 {
		t.Errorf("expected slot 1 variant 1, got slot %d variant %d", d.Slot, d.Variant)
	}
}

func TestGenerateSequence(t *testing.T) {
	a := NewAssembler()

	req := validRequest()
	req.Sequence = true

	drafts, err := a.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(drafts) != SequenceLength {
		t.Fatalf("expected %d drafts, got %d", SequenceLength, len(drafts))
	}

	for i, d := range drafts {
		if d.Slot != i+1 {
			t.Errorf("draft %d: expected slot %d, got %d", i, i+1, d.Slot)
		}
		if d.Subject == "" || d.Body == "" {
			t.Errorf("draft %d: empty subject or body", i)
		}
	}

	for _, d := range drafts[1:] {
		if !strings.HasPrefix(d.Subject, "Re: ") {
			t.Errorf("follow-up subject should thread on the initial one, got %q", d.Subject)
		}
	}
}

func TestGenerateVariants(t *testing.T) {
	a := NewAssembler()

	req := validRequest()
	req.Variants = 3

	drafts, err := a.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(drafts))
	}

	for i, d := range drafts {
		if d.Variant != i+1 {
			t.Errorf("draft %d: expected variant %d, got %d", i, i+1, d.Variant)
		}
	}
}

func TestGenerateSequenceWithVariants(t *testing.T) {
	a := NewAssembler()

	req := validRequest()
	req.Sequence = true
	req.Variants = 2

	drafts, err := a.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(drafts) != SequenceLength*2 {
		t.Fatalf("expected %d drafts, got %d", SequenceLength*2, len(drafts))
	}

	// slot-major order: both variants of slot 1 before any of slot 2
	if drafts[0].Slot != 1 || drafts[1].Slot != 1 || drafts[2].Slot != 2 {
		t.Errorf("unexpected slot order: %d %d %d", drafts[0].Slot, drafts[1].Slot, drafts[2].Slot)
	}
}

func TestGenerateMissingTarget(t *testing.T) {
	mock := &mockLLM{replies: []string{`{"subject":"s","body":"b"}`}}
	a := NewAssembler(WithLLM(mock))

	req := validRequest()
	req.Target = ""

	_, err := a.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for empty target")
	}
	if code := errCode(t, err); code != "OUTREACH_INVALID_ARGUMENT" {
		t.Errorf("expected OUTREACH_INVALID_ARGUMENT, got %s", code)
	}
	if mock.calls != 0 {
		t.Errorf("validation should fail before any provider call, got %d calls", mock.calls)
	}
}

func TestGenerateMissingOffer(t *testing.T) {
	a := NewAssembler()

	req := validRequest()
	req.Offer = "  "

	_, err := a.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for empty offer")
	}
	if code := errCode(t, err); code != "OUTREACH_INVALID_ARGUMENT" {
		t.Errorf("expected OUTREACH_INVALID_ARGUMENT, got %s", code)
	}
}

func TestGenerateNonPositiveVariants(t *testing.T) {
	mock := &mockLLM{replies: []string{`{"subject":"s","body":"b"}`}}
	a := NewAssembler(WithLLM(mock))

	for _, variants := range []int{0, -1} {
		req := validRequest()
		req.Variants = variants

		_, err := a.Generate(context.Background(), req)
		if err == nil {
			t.Fatalf("variants=%d: expected error", variants)
		}
		if code := errCode(t, err); code != "OUTREACH_INVALID_ARGUMENT" {
			t.Errorf("variants=%d: expected OUTREACH_INVALID_ARGUMENT, got %s", variants, code)
		}
	}

	if mock.calls != 0 {
		t.Errorf("validation should fail before any provider call, got %d calls", mock.calls)
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	a := NewAssembler()

	req := validRequest()
	req.Length = "novella"

	_, err := a.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for unknown length")
	}
	if code := errCode(t, err); code != "OUTREACH_INVALID_ARGUMENT" {
		t.Errorf("expected OUTREACH_INVALID_ARGUMENT, got %s", code)
	}
}

func TestGenerateWithLLM(t *testing.T) {
	mock := &mockLLM{replies: []string{`{"subject":"Quick thought","body":"Hi John, short and sweet."}`}}
	a := NewAssembler(WithLLM(mock), WithModel("test-model"))

	drafts, err := a.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Subject != "Quick thought" {
		t.Errorf("unexpected subject: %q", drafts[0].Subject)
	}
	if drafts[0].Body != "Hi John, short and sweet." {
		t.Errorf("unexpected body: %q", drafts[0].Body)
	}

	if !mock.lastOptions.JSONMode {
		t.Error("expected JSON mode to be requested")
	}
	if mock.lastOptions.Model != "test-model" {
		t.Errorf("expected model override, got %q", mock.lastOptions.Model)
	}

	prompt := mock.prompts[0]
	for _, want := range []string{"John Smith, CEO at TechCorp", "AI automation services", "reduce manual work by 70%", "- Length: short"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateMediumLengthPrompt(t *testing.T) {
	mock := &mockLLM{replies: []string{`{"subject":"s","body":"b"}`}}
	a := NewAssembler(WithLLM(mock), WithMaxTokens(512))

	req := validRequest()
	req.Length = "medium"

	if _, err := a.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(mock.prompts[0], "- Length: medium") {
		t.Errorf("prompt missing the requested length:\n%s", mock.prompts[0])
	}
	if mock.lastOptions.MaxTokens != 512 {
		t.Errorf("expected max tokens cap 512, got %d", mock.lastOptions.MaxTokens)
	}
}

func TestGenerateFencedReply(t *testing.T) {
	mock := &mockLLM{replies: []string{"```json\n{\"subject\":\"s\",\"body\":\"b\"}\n```"}}
	a := NewAssembler(WithLLM(mock))

	drafts, err := a.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if drafts[0].Subject != "s" || drafts[0].Body != "b" {
		t.Errorf("fence stripping failed: %+v", drafts[0])
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := &mockLLM{err: fmt.Errorf("connection refused")}
	a := NewAssembler(WithLLM(mock))

	_, err := a.Generate(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
	if code := errCode(t, err); code != "OUTREACH_GENERATION_FAILED" {
		t.Errorf("expected OUTREACH_GENERATION_FAILED, got %s", code)
	}
	if errx.ExitCodeFor(err) != 3 {
		t.Errorf("expected exit code 3, got %d", errx.ExitCodeFor(err))
	}
}

func TestGenerateSequencePromptContinuity(t *testing.T) {
	mock := &mockLLM{replies: []string{
		`{"subject":"Initial subject","body":"b1"}`,
		`{"subject":"Follow-up 1","body":"b2"}`,
		`{"subject":"Follow-up 2","body":"b3"}`,
		`{"subject":"Follow-up 3","body":"b4"}`,
		`{"subject":"Follow-up 4","body":"b5"}`,
	}}
	a := NewAssembler(WithLLM(mock))

	req := validRequest()
	req.Sequence = true

	drafts, err := a.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(drafts) != SequenceLength {
		t.Fatalf("expected %d drafts, got %d", SequenceLength, len(drafts))
	}

	// the second prompt must reference the first draft's subject
	if !strings.Contains(mock.prompts[1], "Initial subject") {
		t.Errorf("follow-up prompt should reference the prior subject:\n%s", mock.prompts[1])
	}
	if strings.Contains(mock.prompts[0], "FOLLOW-UP") {
		t.Error("initial prompt should not carry follow-up instructions")
	}
}

func TestGenerateWithResearch(t *testing.T) {
	mock := &mockLLM{replies: []string{`{"subject":"s","body":"b"}`}}
	researcher := &mockResearcher{summary: research.Summary{
		Description: "TechCorp builds warehouse robots",
		TechHints:   []string{"React", "Stripe"},
	}}
	a := NewAssembler(WithLLM(mock), WithResearcher(researcher))

	req := validRequest()
	req.Research = true
	req.Website = "techcorp.com"

	if _, err := a.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if researcher.calls != 1 {
		t.Fatalf("expected 1 research call, got %d", researcher.calls)
	}
	if researcher.website != "techcorp.com" {
		t.Errorf("unexpected website passed to researcher: %q", researcher.website)
	}
	if !strings.Contains(mock.prompts[0], "warehouse robots") {
		t.Errorf("prompt should carry the research summary:\n%s", mock.prompts[0])
	}
}

func TestGenerateResearchRequiresWebsite(t *testing.T) {
	researcher := &mockResearcher{}
	a := NewAssembler(WithResearcher(researcher))

	req := validRequest()
	req.Research = true

	_, err := a.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected error when research is set without a website")
	}
	if code := errCode(t, err); code != "OUTREACH_INVALID_ARGUMENT" {
		t.Errorf("expected OUTREACH_INVALID_ARGUMENT, got %s", code)
	}
	if researcher.calls != 0 {
		t.Errorf("researcher should not be called, got %d calls", researcher.calls)
	}
}

func TestGenerateResearchFailure(t *testing.T) {
	researcher := &mockResearcher{err: fmt.Errorf("dns lookup failed")}
	a := NewAssembler(WithResearcher(researcher))

	req := validRequest()
	req.Research = true
	req.Website = "nosuchsite.example"

	_, err := a.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected research failure to surface")
	}
}
