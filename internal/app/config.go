package app

import (
	"fmt"

	server "github.com/admin/tg-bots/info-bot/internal/adapters/primary/http"
	lookupAdapter "github.com/admin/tg-bots/info-bot/internal/adapters/secondary/lookup"
	redisAdapter "github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/sqlite"
	"github.com/admin/tg-bots/info-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/info-bot/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Sqlite   *sqlite.Config        `envconfig:"SQLITE"`
	Log      *logger.Config        `envconfig:"LOG"`
	Server   *server.Config        `envconfig:"APISERVER"`
	Telegram *telegram.Config      `envconfig:"TELEGRAM"`
	Lookup   *lookupAdapter.Config `envconfig:"LOOKUP_API"`
	Bot      *BotConfig            `envconfig:"BOT"`
	Redis    *redisAdapter.Config  `envconfig:"REDIS"` // nil - кэш отключён
}

// BotConfig настройки самого бота: админ и канал-гейт
type BotConfig struct {
	AdminID     int64  `envconfig:"ADMIN_ID" required:"true"`
	ChannelID   string `envconfig:"CHANNEL_ID"`   // пустой - гейт канала отключён
	ChannelLink string `envconfig:"CHANNEL_LINK"` // ссылка для кнопки Join Channel
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения и заполняет дефолты для
// секций, по которым не задано ни одной переменной окружения.
// Без токена бота и ID администратора процесс не стартует.
func (c *Config) Validate() error {
	if c.Telegram == nil || c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required")
	}
	if c.Bot == nil || c.Bot.AdminID == 0 {
		return fmt.Errorf("bot admin id is required")
	}

	if c.Sqlite == nil {
		c.Sqlite = &sqlite.Config{Path: "users.db"}
	}
	if c.Server == nil {
		c.Server = &server.Config{Port: "8080"}
	}
	if c.Lookup == nil {
		c.Lookup = &lookupAdapter.Config{TimeoutSeconds: 30}
	}

	return nil
}
