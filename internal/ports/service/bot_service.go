package service

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// IBotService интерфейс бизнес-логики бота для диспетчера обновлений
type IBotService interface {
	GetOrCreateUser(ctx context.Context, tgUser *domain.TelegramUser) (*domain.User, error)
	HandleCommand(ctx context.Context, user *domain.User, chatID int64, command string, updateID int64) error
	HandleText(ctx context.Context, user *domain.User, chatID int64, text string, updateID int64) error
}
