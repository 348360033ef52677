package aibedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/coldcopy/coldcopy/pkg/ai/llm"
)

// ProviderOption configures the Bedrock provider
type ProviderOption func(*BedrockProvider)

// WithDefaultModel sets the default model ID
func WithDefaultModel(model string) ProviderOption {
	return func(p *BedrockProvider) {
		p.defaultModel = model
	}
}

// BedrockProvider implements the LLM interface for AWS Bedrock
type BedrockProvider struct {
	client       *bedrockruntime.Client
	defaultModel string
}

// NewBedrockProvider creates a new Bedrock provider
func NewBedrockProvider(cfg aws.Config, opts ...ProviderOption) *BedrockProvider {
	p := &BedrockProvider{
		client:       bedrockruntime.NewFromConfig(cfg),
		defaultModel: "anthropic.claude-sonnet-4-20250514-v1:0",
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func defaultChatOptions(model string) *llm.ChatOptions {
	options := llm.DefaultOptions()
	options.Model = model
	return options
}

// Chat implements the LLM interface
func (p *BedrockProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	if len(messages) == 0 {
		return llm.Response{}, errorRegistry.New(ErrEmptyMessages)
	}

	options := defaultChatOptions(p.defaultModel)
	for _, opt := range opts {
		opt(options)
	}

	systemBlocks, nonSystemMsgs := extractSystemPrompt(messages)

	// Converse has no JSON response mode; instruct the model instead.
	if options.JSONMode {
		systemBlocks = append(systemBlocks, &types.SystemContentBlockMemberText{
			Value: "Respond with a single JSON object and nothing else. No prose, no code fences.",
		})
	}

	bedrockMsgs, err := convertMessages(nonSystemMsgs)
	if err != nil {
		return llm.Response{}, err
	}

	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(options.Model),
		Messages: bedrockMsgs,
	}

	if len(systemBlocks) > 0 {
		input.System = systemBlocks
	}

	if inferenceConfig := buildInferenceConfig(options); inferenceConfig != nil {
		input.InferenceConfig = inferenceConfig
	}

	output, err := p.client.Converse(ctx, input)
	if err != nil {
		return llm.Response{}, ParseBedrockError(err).
			WithDetail("model", options.Model).
			WithDetail("num_messages", len(messages))
	}

	return convertFromBedrockResponse(output)
}

// extractSystemPrompt separates system messages into system content blocks
func extractSystemPrompt(messages []llm.Message) ([]types.SystemContentBlock, []llm.Message) {
	var system []types.SystemContentBlock
	var rest []llm.Message

	for _, msg := range messages {
		if msg.Role == llm.RoleSystem {
			system = append(system, &types.SystemContentBlockMemberText{
				Value: msg.Content,
			})
		} else {
			rest = append(rest, msg)
		}
	}

	return system, rest
}

// convertMessages converts llm.Message slice to Bedrock Converse messages
func convertMessages(messages []llm.Message) ([]types.Message, error) {
	var result []types.Message

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleUser:
			result = append(result, types.Message{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: msg.Content},
				},
			})

		case llm.RoleAssistant:
			result = append(result, types.Message{
				Role: types.ConversationRoleAssistant,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: msg.Content},
				},
			})

		default:
			return nil, errorRegistry.New(ErrUnsupportedRole).
				WithDetail("role", msg.Role)
		}
	}

	return result, nil
}

func buildInferenceConfig(options *llm.ChatOptions) *types.InferenceConfiguration {
	config := &types.InferenceConfiguration{}
	hasConfig := false

	if options.MaxCompletionTokens > 0 {
		v := int32(options.MaxCompletionTokens)
		config.MaxTokens = &v
		hasConfig = true
	} else if options.MaxTokens > 0 {
		v := int32(options.MaxTokens)
		config.MaxTokens = &v
		hasConfig = true
	}

	if options.Temperature != 0 {
		v := options.Temperature
		config.Temperature = &v
		hasConfig = true
	}

	if options.TopP != 0 {
		v := options.TopP
		config.TopP = &v
		hasConfig = true
	}

	if len(options.Stop) > 0 {
		config.StopSequences = options.Stop
		hasConfig = true
	}

	if !hasConfig {
		return nil
	}

	return config
}

func convertFromBedrockResponse(output *bedrockruntime.ConverseOutput) (llm.Response, error) {
	msgOutput, ok := output.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return llm.Response{}, errorRegistry.New(ErrAPIResponse).
			WithDetail("error", "unexpected output type")
	}

	var content string
	for _, block := range msgOutput.Value.Content {
		if v, ok := block.(*types.ContentBlockMemberText); ok {
			content += v.Value
		}
	}

	usage := llm.Usage{}
	if output.Usage != nil {
		if output.Usage.InputTokens != nil {
			usage.PromptTokens = int(*output.Usage.InputTokens)
		}
		if output.Usage.OutputTokens != nil {
			usage.CompletionTokens = int(*output.Usage.OutputTokens)
		}
		if output.Usage.TotalTokens != nil {
			usage.TotalTokens = int(*output.Usage.TotalTokens)
		}
	}

	return llm.Response{
		Message: llm.Message{
			Role:    llm.RoleAssistant,
			Content: content,
		},
		Usage: usage,
	}, nil
}
