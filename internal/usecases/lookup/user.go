package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// GetOrCreateUser получает пользователя по Telegram ID или создаёт нового
// со стартовым балансом. Пользователи без предварительного /start тоже
// проходят через этот bootstrap - любое входящее сообщение гарантирует
// наличие строки в БД до операций с кредитами или историей.
func (s *Service) GetOrCreateUser(ctx context.Context, tgUser *domain.TelegramUser) (*domain.User, error) {
	user, err := s.UserRepo.GetByID(ctx, tgUser.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	newUser := &domain.User{
		UserID:    tgUser.ID,
		Username:  tgUser.Username,
		FirstName: tgUser.FirstName,
		LastName:  tgUser.LastName,
		Credits:   domain.DefaultCredits,
	}

	// Create идемпотентен: проигрыш гонки двух первых сообщений не ошибка
	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err = s.UserRepo.GetByID(ctx, tgUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user after create: %w", err)
	}

	return user, nil
}
