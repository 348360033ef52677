package aiazure

import (
	"context"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/coldcopy/coldcopy/pkg/ai/llm"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// ProviderOption configures the Azure OpenAI provider
type ProviderOption func(*AzureOpenAIProvider)

// WithAPIVersion sets the Azure OpenAI API version
func WithAPIVersion(version string) ProviderOption {
	return func(p *AzureOpenAIProvider) {
		p.apiVersion = version
	}
}

// WithAzureADCredential configures Azure AD authentication
func WithAzureADCredential(cred azcore.TokenCredential) ProviderOption {
	return func(p *AzureOpenAIProvider) {
		p.tokenCredential = cred
	}
}

// AzureOpenAIProvider implements the LLM interface for Azure OpenAI
type AzureOpenAIProvider struct {
	client          openai.Client
	endpoint        string
	apiKey          string
	apiVersion      string
	tokenCredential azcore.TokenCredential
}

// NewAzureOpenAIProvider creates a new Azure OpenAI provider
func NewAzureOpenAIProvider(endpoint, apiKey string, opts ...ProviderOption) *AzureOpenAIProvider {
	p := &AzureOpenAIProvider{
		endpoint:   endpoint,
		apiKey:     apiKey,
		apiVersion: "2024-06-01",
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.apiKey == "" {
		p.apiKey = os.Getenv("AZURE_OPENAI_API_KEY")
	}

	var clientOpts []option.RequestOption
	clientOpts = append(clientOpts, azure.WithEndpoint(p.endpoint, p.apiVersion))

	if p.tokenCredential != nil {
		clientOpts = append(clientOpts, azure.WithTokenCredential(p.tokenCredential))
	} else {
		clientOpts = append(clientOpts, azure.WithAPIKey(p.apiKey))
	}

	p.client = openai.NewClient(clientOpts...)
	return p
}

// Chat implements the LLM interface. The model option carries the Azure
// deployment name.
func (p *AzureOpenAIProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	if p.endpoint == "" {
		return llm.Response{}, errorRegistry.New(ErrMissingEndpoint)
	}

	if len(messages) == 0 {
		return llm.Response{}, errorRegistry.New(ErrEmptyMessages)
	}

	options := llm.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.Model == "" {
		return llm.Response{}, errorRegistry.NewWithMessage(ErrMissingEndpoint,
			"model/deployment name is required for Azure OpenAI")
	}

	openAIMessages, err := convertMessages(messages)
	if err != nil {
		return llm.Response{}, err
	}

	params := openai.ChatCompletionNewParams{
		Messages: openAIMessages,
		Model:    options.Model,
	}

	if options.Temperature != 0 {
		params.Temperature = openai.Float(float64(options.Temperature))
	}
	if options.TopP != 0 {
		params.TopP = openai.Float(float64(options.TopP))
	}
	if options.MaxCompletionTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(options.MaxCompletionTokens))
	} else if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if len(options.Stop) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: options.Stop,
		}
	}
	if options.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return llm.Response{}, ParseAzureError(err).
			WithDetail("model", options.Model).
			WithDetail("num_messages", len(messages))
	}

	return convertFromResponse(completion)
}

func convertMessages(messages []llm.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case llm.RoleUser:
			result = append(result, openai.UserMessage(msg.Content))
		case llm.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			return nil, errorRegistry.New(ErrUnsupportedRole).
				WithDetail("role", msg.Role)
		}
	}

	return result, nil
}

func convertFromResponse(completion *openai.ChatCompletion) (llm.Response, error) {
	if len(completion.Choices) == 0 {
		return llm.Response{}, errorRegistry.New(ErrAPIResponse).
			WithDetail("error", "no choices in response")
	}

	choice := completion.Choices[0]

	return llm.Response{
		Message: llm.Message{
			Role:    string(choice.Message.Role),
			Content: choice.Message.Content,
		},
		Usage: llm.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}
