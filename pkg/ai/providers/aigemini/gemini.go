package aigemini

import (
	"context"
	"os"

	"github.com/coldcopy/coldcopy/pkg/ai/llm"
	"google.golang.org/genai"
)

// ProviderOption configures the Gemini provider
type ProviderOption func(*GeminiProvider)

// WithVertexAI configures the provider to use Vertex AI backend
func WithVertexAI(project, location string) ProviderOption {
	return func(p *GeminiProvider) {
		p.project = project
		p.location = location
		p.useVertexAI = true
	}
}

// GeminiProvider implements the LLM interface for Google Gemini
type GeminiProvider struct {
	client      *genai.Client
	apiKey      string
	project     string
	location    string
	useVertexAI bool
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string, opts ...ProviderOption) (*GeminiProvider, error) {
	p := &GeminiProvider{
		apiKey: apiKey,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.apiKey == "" {
		p.apiKey = os.Getenv("GEMINI_API_KEY")
	}

	config := &genai.ClientConfig{}

	if p.useVertexAI {
		config.Backend = genai.BackendVertexAI
		config.Project = p.project
		config.Location = p.location
	} else {
		config.APIKey = p.apiKey
		config.Backend = genai.BackendGeminiAPI
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, WrapError(err, ErrMissingAPIKey).
			WithDetail("error", "failed to create Gemini client")
	}

	p.client = client
	return p, nil
}

func defaultChatOptions() *llm.ChatOptions {
	options := llm.DefaultOptions()
	options.Model = "gemini-2.0-flash"
	return options
}

// Chat implements the LLM interface
func (p *GeminiProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	if len(messages) == 0 {
		return llm.Response{}, errorRegistry.New(ErrEmptyMessages)
	}

	options := defaultChatOptions()
	for _, opt := range opts {
		opt(options)
	}

	systemContent, contents := convertMessages(messages)

	config := buildGenerateConfig(options, systemContent)

	result, err := p.client.Models.GenerateContent(ctx, options.Model, contents, config)
	if err != nil {
		return llm.Response{}, ParseGeminiError(err).
			WithDetail("model", options.Model).
			WithDetail("num_messages", len(messages))
	}

	return convertFromGeminiResponse(result)
}

// convertMessages folds system messages into a system instruction and maps
// the rest onto Gemini user/model contents
func convertMessages(messages []llm.Message) (*genai.Content, []*genai.Content) {
	var system string
	var contents []*genai.Content

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			if system != "" {
				system += "\n"
			}
			system += msg.Content
		case llm.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	var systemContent *genai.Content
	if system != "" {
		systemContent = genai.NewContentFromText(system, genai.RoleUser)
	}

	return systemContent, contents
}

func buildGenerateConfig(options *llm.ChatOptions, systemContent *genai.Content) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	if systemContent != nil {
		config.SystemInstruction = systemContent
	}

	if options.Temperature != 0 {
		config.Temperature = genai.Ptr(options.Temperature)
	}
	if options.TopP != 0 {
		config.TopP = genai.Ptr(options.TopP)
	}
	if options.MaxCompletionTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxCompletionTokens)
	} else if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if len(options.Stop) > 0 {
		config.StopSequences = options.Stop
	}
	if options.Seed != 0 {
		seed := int32(options.Seed)
		config.Seed = &seed
	}

	if options.JSONMode {
		config.ResponseMIMEType = "application/json"
	}

	return config
}

func convertFromGeminiResponse(result *genai.GenerateContentResponse) (llm.Response, error) {
	if result == nil || len(result.Candidates) == 0 {
		return llm.Response{}, errorRegistry.New(ErrAPIResponse).
			WithDetail("error", "no candidates in response")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return llm.Response{
			Message: llm.Message{Role: llm.RoleAssistant},
		}, nil
	}

	var content string
	for _, part := range candidate.Content.Parts {
		content += part.Text
	}

	usage := llm.Usage{}
	if result.UsageMetadata != nil {
		usage.PromptTokens = int(result.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int(result.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(result.UsageMetadata.TotalTokenCount)
	}

	return llm.Response{
		Message: llm.Message{
			Role:    llm.RoleAssistant,
			Content: content,
		},
		Usage: usage,
	}, nil
}
