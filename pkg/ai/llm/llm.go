package llm

import "context"

// LLM is the capability consumed by the rest of the system: hand the model a
// conversation, get a completion back. Implementations live under
// pkg/ai/providers.
type LLM interface {
	Chat(ctx context.Context, messages []Message, opts ...Option) (Response, error)
}

// Response represents a chat completion
type Response struct {
	Message Message `json:"message"`
	Usage   Usage   `json:"usage"`
}

// ChatOptions holds per-call generation parameters
type ChatOptions struct {
	Model               string
	Temperature         float32
	TopP                float32
	MaxTokens           int
	MaxCompletionTokens int
	Stop                []string
	Seed                int64
	User                string

	// JSONMode asks the model to emit a JSON object
	JSONMode bool
}

// Option is a functional option for Chat calls
type Option func(*ChatOptions)

// DefaultOptions returns the default chat options
func DefaultOptions() *ChatOptions {
	return &ChatOptions{
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// WithModel sets the model name (or deployment name for Azure)
func WithModel(model string) Option {
	return func(o *ChatOptions) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(temperature float32) Option {
	return func(o *ChatOptions) {
		o.Temperature = temperature
	}
}

// WithTopP sets nucleus sampling
func WithTopP(topP float32) Option {
	return func(o *ChatOptions) {
		o.TopP = topP
	}
}

// WithMaxTokens sets the completion token limit
func WithMaxTokens(maxTokens int) Option {
	return func(o *ChatOptions) {
		o.MaxTokens = maxTokens
	}
}

// WithStop sets stop sequences
func WithStop(stop ...string) Option {
	return func(o *ChatOptions) {
		o.Stop = stop
	}
}

// WithSeed sets a sampling seed where the provider supports it
func WithSeed(seed int64) Option {
	return func(o *ChatOptions) {
		o.Seed = seed
	}
}

// WithJSONMode requests JSON object output
func WithJSONMode() Option {
	return func(o *ChatOptions) {
		o.JSONMode = true
	}
}
