package lookup

import (
	"log/slog"
	"time"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/ports/cache"
	"github.com/admin/tg-bots/info-bot/internal/ports/repository"
	"github.com/admin/tg-bots/info-bot/internal/ports/service"
	"github.com/admin/tg-bots/info-bot/internal/ports/telegram"
)

// Service бизнес-логика info-бота: роутинг команд и текста, кредитный
// леджер, оркестрация поисков и модерация.
type Service struct {
	UserRepo      repository.IUserRepo
	HistoryRepo   repository.IHistoryRepo
	ProtectedRepo repository.IProtectedRepo
	Telegram      telegram.IClient
	LookupAPI     service.ILookupAPI
	Cache         cache.Cache // может быть nil
	CacheTTL      time.Duration
	Registry      []domain.LookupType
	AdminID       int64
	ChannelID     string
	ChannelLink   string
	Log           *slog.Logger
}

// New создаёт новый сервис бизнес-логики info-бота
func New(
	userRepo repository.IUserRepo,
	historyRepo repository.IHistoryRepo,
	protectedRepo repository.IProtectedRepo,
	telegramClient telegram.IClient,
	lookupAPI service.ILookupAPI,
	responseCache cache.Cache,
	cacheTTL time.Duration,
	registry []domain.LookupType,
	adminID int64,
	channelID string,
	channelLink string,
	log *slog.Logger,
) *Service {
	return &Service{
		UserRepo:      userRepo,
		HistoryRepo:   historyRepo,
		ProtectedRepo: protectedRepo,
		Telegram:      telegramClient,
		LookupAPI:     lookupAPI,
		Cache:         responseCache,
		CacheTTL:      cacheTTL,
		Registry:      registry,
		AdminID:       adminID,
		ChannelID:     channelID,
		ChannelLink:   channelLink,
		Log:           log,
	}
}

// isAdmin проверяет, является ли пользователь настроенным администратором
func (s *Service) isAdmin(userID int64) bool {
	return userID == s.AdminID
}
