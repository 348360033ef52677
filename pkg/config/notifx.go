package config

// NotifxConfig configures draft delivery.
type NotifxConfig struct {
	Provider     string
	FromAddress  string
	FromName     string
	AWSRegion    string
	SESConfigSet string
}

func loadNotifxConfig() NotifxConfig {
	return NotifxConfig{
		Provider:     getEnv("NOTIFX_PROVIDER", "console"),
		FromAddress:  getEnv("NOTIFX_FROM_ADDRESS", getEnv("EMAIL_FROM_ADDRESS", "")),
		FromName:     getEnv("NOTIFX_FROM_NAME", getEnv("EMAIL_FROM_NAME", "")),
		AWSRegion:    getEnv("NOTIFX_AWS_REGION", getEnv("AWS_REGION", "us-east-1")),
		SESConfigSet: getEnv("NOTIFX_SES_CONFIG_SET", ""),
	}
}
