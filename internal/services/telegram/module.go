package telegram

import (
	"log/slog"

	"github.com/admin/tg-bots/info-bot/internal/ports/service"
)

// Service диспетчер обновлений Telegram: фильтрация, bootstrap пользователя
// и роутинг в бизнес-логику
type Service struct {
	Usecase service.IBotService
	Log     *slog.Logger
}

func New(usecase service.IBotService, log *slog.Logger) *Service {
	return &Service{
		Usecase: usecase,
		Log:     log,
	}
}
