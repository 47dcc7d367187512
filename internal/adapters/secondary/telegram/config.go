package telegram

type Config struct {
	BotToken       string `envconfig:"BOT_TOKEN" required:"true"`
	WebhookURL     string `envconfig:"WEBHOOK_URL"`
	SecretToken    string `envconfig:"SECRET_TOKEN"`
	PollingTimeout int    `envconfig:"POLLING_TIMEOUT" default:"30"` // в секундах
}

// IsWebhookEnabled webhook включён, если задан публичный URL
func (c *Config) IsWebhookEnabled() bool {
	return c.WebhookURL != ""
}
