package main

import (
	"context"
	"os"

	"github.com/coldcopy/coldcopy/pkg/config"
	"github.com/coldcopy/coldcopy/pkg/errx"
	"github.com/coldcopy/coldcopy/pkg/logx"
	"github.com/coldcopy/coldcopy/pkg/outreach"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	target    string
	offer     string
	angle     string
	framework string
	sequence  bool
	variants  int

	research bool
	website  string

	provider string
	model    string

	jsonOut bool

	send bool
	to   string

	sender        string
	senderCompany string
	cta           string
	tone          string
	length        string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "coldcopy",
		Short: "Generate cold outreach email copy",
		Long: `coldcopy generates personalized cold outreach emails.

Given a target and an offer it renders a persuasion-framework template
directly, or hands the filled prompt to an AI text-generation provider
(Anthropic, OpenAI, Gemini, Azure OpenAI, or AWS Bedrock) and prints the
resulting drafts to stdout. It can research the target's website first
and deliver finished drafts over email.`,
		Example: `  coldcopy --target "John Smith, CEO at TechCorp" --offer "AI automation services"
  coldcopy --target "Jane Doe, CTO at Acme" --offer "SOC2 automation" --framework pas --sequence
  coldcopy --target "..." --offer "..." --research --website acme.com --variants 3 --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.target, "target", "", `prospect description, e.g. "John Smith, CEO at TechCorp" (required)`)
	f.StringVar(&flags.offer, "offer", "", "what you are offering (required)")
	f.StringVar(&flags.angle, "angle", "", "value proposition or hook to emphasize")
	f.StringVar(&flags.framework, "framework", "direct", "persuasion framework: pas|value|curiosity|social|direct")
	f.BoolVar(&flags.sequence, "sequence", false, "generate an initial email plus 4 follow-ups")
	f.IntVar(&flags.variants, "variants", 1, "independent variants per email")

	f.BoolVar(&flags.research, "research", false, "research the target's website before generating (requires --website)")
	f.StringVar(&flags.website, "website", "", "target company website")

	f.StringVar(&flags.provider, "provider", "auto", "generation provider: auto|anthropic|openai|gemini|azure|bedrock|template")
	f.StringVar(&flags.model, "model", "", "override the provider's default model")

	f.BoolVar(&flags.jsonOut, "json", false, "emit drafts as JSON")

	f.BoolVar(&flags.send, "send", false, "deliver drafts by email (requires --to)")
	f.StringVar(&flags.to, "to", "", "recipient address for --send")

	f.StringVar(&flags.sender, "sender", "", "your name, used in the signature")
	f.StringVar(&flags.senderCompany, "sender-company", "", "your company, used in the signature")
	f.StringVar(&flags.cta, "cta", "", `call to action (default "quick call")`)
	f.StringVar(&flags.tone, "tone", "", `tone: professional|casual|professional-friendly`)
	f.StringVar(&flags.length, "length", "short", "email length: short|medium")

	return cmd
}

func run(ctx context.Context, flags *rootFlags) error {
	cfg := config.Load()

	fw, err := outreach.ParseFramework(flags.framework)
	if err != nil {
		return err
	}

	if flags.send && flags.to == "" {
		return errx.New("--send requires --to", errx.TypeValidation)
	}

	req := outreach.GenerationRequest{
		Target:        flags.target,
		Offer:         flags.offer,
		Angle:         flags.angle,
		Framework:     fw,
		Sequence:      flags.sequence,
		Variants:      flags.variants,
		Research:      flags.research,
		Website:       flags.website,
		Sender:        flags.sender,
		SenderCompany: flags.senderCompany,
		CTA:           flags.cta,
		Tone:          flags.tone,
		Length:        flags.length,
	}

	assembler, providerName, err := newAssembler(ctx, cfg, flags)
	if err != nil {
		return err
	}

	logx.WithField("provider", providerName).Info("generating drafts")

	drafts, err := assembler.Generate(ctx, req)
	if err != nil {
		return err
	}

	if flags.jsonOut {
		if err := outreach.RenderJSON(os.Stdout, drafts); err != nil {
			return err
		}
	} else {
		if err := outreach.RenderText(os.Stdout, drafts); err != nil {
			return err
		}
	}

	if flags.send {
		return sendDrafts(ctx, cfg, flags, drafts)
	}

	return nil
}
