package config

import "time"

// ResearchConfig configures the website researcher.
type ResearchConfig struct {
	Timeout   time.Duration
	UserAgent string
}

func loadResearchConfig() ResearchConfig {
	return ResearchConfig{
		Timeout:   getEnvDuration("COLDCOPY_RESEARCH_TIMEOUT", 10*time.Second),
		UserAgent: getEnv("COLDCOPY_RESEARCH_USER_AGENT", ""),
	}
}
