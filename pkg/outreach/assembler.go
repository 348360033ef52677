package outreach

import (
	"context"
	"fmt"
	"strings"

	"github.com/coldcopy/coldcopy/pkg/ai/llm"
	"github.com/coldcopy/coldcopy/pkg/logx"
	"github.com/coldcopy/coldcopy/pkg/research"
	"github.com/google/uuid"
)

const (
	defaultCTA    = "quick call"
	defaultTone   = "professional-friendly"
	defaultLength = "short"
)

// AssemblerOption configures the assembler
type AssemblerOption func(*Assembler)

// WithLLM sets the generation provider. Without one the assembler renders
// the framework skeletons directly.
func WithLLM(provider llm.LLM) AssemblerOption {
	return func(a *Assembler) {
		a.llm = provider
	}
}

// WithModel overrides the provider's default model
func WithModel(model string) AssemblerOption {
	return func(a *Assembler) {
		a.model = model
	}
}

// WithMaxTokens caps the completion size requested from the provider
func WithMaxTokens(maxTokens int) AssemblerOption {
	return func(a *Assembler) {
		a.maxTokens = maxTokens
	}
}

// WithResearcher sets the research collaborator
func WithResearcher(r research.Researcher) AssemblerOption {
	return func(a *Assembler) {
		a.researcher = r
	}
}

// Assembler turns a GenerationRequest into one or more email drafts
type Assembler struct {
	llm        llm.LLM
	model      string
	maxTokens  int
	researcher research.Researcher
}

// NewAssembler creates an assembler
func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate validates the request, optionally researches the target, and
// produces the requested drafts in follow-up order. One request in, a
// stateless pass, drafts out.
func (a *Assembler) Generate(ctx context.Context, req GenerationRequest) (EmailSequence, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}

	variants := req.Variants

	var summary research.Summary
	if req.Research {
		logx.WithField("website", req.Website).Info("researching target")

		var err error
		summary, err = a.researcher.Research(ctx, req.Target, req.Website)
		if err != nil {
			return nil, err
		}

		if !summary.IsEmpty() {
			logx.WithField("found", truncate(summary.Context(), 80)).Debug("research summary")
		}
	}

	slots := 1
	if req.Sequence {
		slots = SequenceLength
	}

	drafts := make(EmailSequence, 0, slots*variants)
	prior := make([]*EmailDraft, variants+1)

	for slot := 1; slot <= slots; slot++ {
		for v := 1; v <= variants; v++ {
			logx.WithFields(logx.Fields{"slot": slot, "variant": v}).Debug("generating draft")

			draft, err := a.generateDraft(ctx, req, summary, slot, v, prior[v])
			if err != nil {
				return nil, err
			}

			drafts = append(drafts, draft)
			d := draft
			prior[v] = &d
		}
	}

	return drafts, nil
}

func (a *Assembler) validate(req GenerationRequest) error {
	if strings.TrimSpace(req.Target) == "" {
		return errorRegistry.NewWithMessage(ErrInvalidArgument, "target is required")
	}
	if strings.TrimSpace(req.Offer) == "" {
		return errorRegistry.NewWithMessage(ErrInvalidArgument, "offer is required")
	}
	if req.Variants < 1 {
		return errorRegistry.NewWithMessage(ErrInvalidArgument, "variant count must be a positive integer").
			WithDetail("variants", req.Variants)
	}
	switch req.Length {
	case "", "short", "medium":
	default:
		return errorRegistry.NewWithMessage(ErrInvalidArgument, "length must be short or medium").
			WithDetail("length", req.Length)
	}
	if req.Research {
		if req.Website == "" {
			return errorRegistry.NewWithMessage(ErrInvalidArgument, "research requires a website")
		}
		if a.researcher == nil {
			return errorRegistry.NewWithMessage(ErrInvalidArgument, "research requested but no researcher configured")
		}
	}
	return nil
}

func (a *Assembler) generateDraft(ctx context.Context, req GenerationRequest, summary research.Summary, slot, variant int, prior *EmailDraft) (EmailDraft, error) {
	if a.llm == nil {
		return a.renderTemplateDraft(req, summary, slot, variant, prior)
	}

	prompt := buildPrompt(req, summary.Context(), slot, prior)

	messages := []llm.Message{
		llm.NewSystemMessage(systemPrompt),
		llm.NewUserMessage(prompt),
	}

	opts := []llm.Option{llm.WithJSONMode()}
	if a.model != "" {
		opts = append(opts, llm.WithModel(a.model))
	}
	if a.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(a.maxTokens))
	}

	resp, err := a.llm.Chat(ctx, messages, opts...)
	if err != nil {
		return EmailDraft{}, errorRegistry.NewWithCause(ErrGenerationFailed, err).
			WithDetail("slot", slot).
			WithDetail("variant", variant)
	}

	reply, err := parseReply(resp.Message.Content)
	if err != nil {
		return EmailDraft{}, err
	}

	return EmailDraft{
		ID:      uuid.NewString(),
		Subject: reply.Subject,
		Body:    reply.Body,
		Slot:    slot,
		Variant: variant,
	}, nil
}

func (a *Assembler) renderTemplateDraft(req GenerationRequest, summary research.Summary, slot, variant int, prior *EmailDraft) (EmailDraft, error) {
	data := newSkeletonData(req, summary)

	var subject, body string
	var err error

	if slot == 1 || prior == nil {
		subject, body, err = req.Framework.Skeleton().Render(data)
		if err != nil {
			return EmailDraft{}, err
		}
	} else {
		subject, body = renderFollowUp(slot, *prior, data)
	}

	return EmailDraft{
		ID:      uuid.NewString(),
		Subject: subject,
		Body:    body,
		Slot:    slot,
		Variant: variant,
	}, nil
}

func newSkeletonData(req GenerationRequest, summary research.Summary) skeletonData {
	data := skeletonData{
		Target:    req.Target,
		FirstName: targetFirstName(req.Target),
		Company:   targetCompany(req.Target),
		Offer:     req.Offer,
		Angle:     req.Angle,
		CTA:       orDefault(req.CTA, defaultCTA),
		Signature: buildSignature(req),
	}

	if summary.Description != "" {
		data.ResearchNote = fmt.Sprintf("I read up on %s before writing this; %q stood out.",
			data.Company, truncate(summary.Description, 140))
	}

	return data
}

func buildSignature(req GenerationRequest) string {
	lines := []string{"Best,"}
	if req.Sender != "" {
		lines = append(lines, req.Sender)
	}
	if req.SenderCompany != "" {
		lines = append(lines, req.SenderCompany)
	}
	return strings.Join(lines, "\n")
}
