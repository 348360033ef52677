// cmd/coldcopy/container.go
//
// Composition root. This is the only place that knows how to turn config
// and flags into wired providers, researchers, and delivery clients.
package main

import (
	"context"
	"fmt"
	"strconv"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/coldcopy/coldcopy/pkg/ai/llm"
	"github.com/coldcopy/coldcopy/pkg/ai/providers/aianthropic"
	"github.com/coldcopy/coldcopy/pkg/ai/providers/aiazure"
	"github.com/coldcopy/coldcopy/pkg/ai/providers/aibedrock"
	"github.com/coldcopy/coldcopy/pkg/ai/providers/aigemini"
	"github.com/coldcopy/coldcopy/pkg/ai/providers/aiopenai"
	"github.com/coldcopy/coldcopy/pkg/config"
	"github.com/coldcopy/coldcopy/pkg/errx"
	"github.com/coldcopy/coldcopy/pkg/logx"
	"github.com/coldcopy/coldcopy/pkg/notifx"
	"github.com/coldcopy/coldcopy/pkg/notifx/notifxconsole"
	"github.com/coldcopy/coldcopy/pkg/notifx/notifxses"
	"github.com/coldcopy/coldcopy/pkg/outreach"
	"github.com/coldcopy/coldcopy/pkg/research"
)

// newAssembler wires the generation provider and researcher into an
// assembler. The returned name is the provider actually selected.
func newAssembler(ctx context.Context, cfg config.Config, flags *rootFlags) (*outreach.Assembler, string, error) {
	provider, name, err := selectProvider(ctx, cfg.AI, flags.provider)
	if err != nil {
		return nil, "", err
	}

	var opts []outreach.AssemblerOption
	if provider != nil {
		opts = append(opts, outreach.WithLLM(provider))
	}

	if model := flags.model; model != "" {
		opts = append(opts, outreach.WithModel(model))
	} else if cfg.AI.DefaultModel != "" {
		opts = append(opts, outreach.WithModel(cfg.AI.DefaultModel))
	}

	if cfg.AI.MaxTokens > 0 {
		opts = append(opts, outreach.WithMaxTokens(cfg.AI.MaxTokens))
	}

	if flags.research {
		opts = append(opts, outreach.WithResearcher(newResearcher(cfg.Research)))
	}

	return outreach.NewAssembler(opts...), name, nil
}

// selectProvider maps the --provider flag to a wired LLM. A nil LLM means
// template mode: the framework skeletons are rendered directly.
func selectProvider(ctx context.Context, cfg config.AIConfig, name string) (llm.LLM, string, error) {
	switch name {
	case "", "auto":
		if cfg.AnthropicAPIKey != "" {
			return aianthropic.NewAnthropicProvider(cfg.AnthropicAPIKey), "anthropic", nil
		}
		if cfg.OpenAIAPIKey != "" {
			return aiopenai.NewOpenAIProvider(cfg.OpenAIAPIKey), "openai", nil
		}
		if cfg.GeminiAPIKey != "" {
			p, err := aigemini.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
			if err != nil {
				return nil, "", err
			}
			return p, "gemini", nil
		}
		logx.Warn("no provider API key found, rendering framework templates directly")
		return nil, "template", nil

	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, "", errx.New("anthropic provider requires ANTHROPIC_API_KEY", errx.TypeAuthorization)
		}
		return aianthropic.NewAnthropicProvider(cfg.AnthropicAPIKey), "anthropic", nil

	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, "", errx.New("openai provider requires OPENAI_API_KEY", errx.TypeAuthorization)
		}
		return aiopenai.NewOpenAIProvider(cfg.OpenAIAPIKey), "openai", nil

	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, "", errx.New("gemini provider requires GEMINI_API_KEY", errx.TypeAuthorization)
		}
		p, err := aigemini.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, "", err
		}
		return p, "gemini", nil

	case "azure":
		if cfg.AzureEndpoint == "" {
			return nil, "", errx.New("azure provider requires AZURE_OPENAI_ENDPOINT", errx.TypeAuthorization)
		}
		p := aiazure.NewAzureOpenAIProvider(cfg.AzureEndpoint, cfg.AzureAPIKey,
			aiazure.WithAPIVersion(cfg.AzureAPIVersion))
		return p, "azure", nil

	case "bedrock":
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, "", errx.Wrap(err, "failed to load AWS configuration", errx.TypeInternal)
		}
		return aibedrock.NewBedrockProvider(awsCfg), "bedrock", nil

	case "template":
		return nil, "template", nil

	default:
		return nil, "", errx.New(
			fmt.Sprintf("unknown provider %q (expected auto|anthropic|openai|gemini|azure|bedrock|template)", name),
			errx.TypeValidation)
	}
}

func newResearcher(cfg config.ResearchConfig) research.Researcher {
	var opts []research.Option
	if cfg.Timeout > 0 {
		opts = append(opts, research.WithTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, research.WithUserAgent(cfg.UserAgent))
	}
	return research.NewWebsiteResearcher(opts...)
}

// newNotifier wires the delivery client: SES when configured, console
// otherwise.
func newNotifier(ctx context.Context, cfg config.NotifxConfig) (*notifx.Client, error) {
	switch cfg.Provider {
	case "ses":
		if cfg.FromAddress == "" {
			return nil, errx.New("ses delivery requires NOTIFX_FROM_ADDRESS", errx.TypeValidation)
		}
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, errx.Wrap(err, "failed to load AWS configuration", errx.TypeInternal)
		}
		provider := notifxses.NewSESProvider(ses.NewFromConfig(awsCfg), cfg.FromAddress)
		return notifx.NewClient(provider), nil

	default:
		return notifx.NewClient(notifxconsole.NewConsoleProvider()), nil
	}
}

// sendDrafts delivers every generated draft to the recipient.
func sendDrafts(ctx context.Context, cfg config.Config, flags *rootFlags, drafts outreach.EmailSequence) error {
	client, err := newNotifier(ctx, cfg.Notifx)
	if err != nil {
		return err
	}

	from := cfg.Notifx.FromAddress
	if cfg.Notifx.FromName != "" && from != "" {
		from = fmt.Sprintf("%s <%s>", cfg.Notifx.FromName, from)
	}

	for _, d := range drafts {
		msg := notifx.EmailMessage{
			From:     from,
			To:       []string{flags.to},
			Subject:  d.Subject,
			TextBody: d.Body,
		}

		sendOpts := []notifx.Option{notifx.WithTags(map[string]string{
			"slot":    strconv.Itoa(d.Slot),
			"variant": strconv.Itoa(d.Variant),
		})}
		if cfg.Notifx.SESConfigSet != "" {
			sendOpts = append(sendOpts, notifx.WithConfigID(cfg.Notifx.SESConfigSet))
		}

		if err := client.SendEmail(ctx, msg, sendOpts...); err != nil {
			return err
		}

		logx.WithFields(logx.Fields{
			"to":      flags.to,
			"slot":    d.Slot,
			"variant": d.Variant,
		}).Info("draft delivered")
	}

	return nil
}
