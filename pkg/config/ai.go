package config

// AIConfig holds the credentials and defaults for the generation providers
type AIConfig struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string
	GeminiAPIKey    string

	AzureEndpoint   string
	AzureAPIKey     string
	AzureAPIVersion string

	AWSRegion string

	DefaultModel string
	MaxTokens    int
}

func loadAIConfig() AIConfig {
	return AIConfig{
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
		AzureEndpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
		AzureAPIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
		AzureAPIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-06-01"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		DefaultModel:    getEnv("COLDCOPY_MODEL", ""),
		MaxTokens:       getEnvInt("COLDCOPY_MAX_TOKENS", 0),
	}
}
