package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.Message != nil {
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	}

	return nil
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase.
// Сообщения от ботов и из групп игнорируются: бот работает только в личке.
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil {
		s.Log.Debug("ignoring message without chat", "update_id", updateID)
		return nil
	}

	if message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	log := s.Log.With(
		"request_id", uuid.NewString(),
		"update_id", updateID,
		"telegram_user_id", message.From.ID,
	)

	// Получаем или создаём пользователя через use case
	user, err := s.Usecase.GetOrCreateUser(ctx, message.From)
	if err != nil {
		log.Error("failed to get or create user", "error", err)
		return domain.WrapBusinessError(fmt.Errorf("failed to get or create user: %w", err))
	}

	if message.Text == nil {
		return nil
	}

	// Исход диспетчеризации логируем request-scoped логгером: ошибка
	// попадает в лог один раз и оборачивается, чтобы верхние слои
	// видели только факт бизнес-ошибки.
	if err := s.routeTextMessage(ctx, user, message.Chat.ID, *message.Text, updateID); err != nil {
		if domain.IsBusinessError(err) {
			log.Debug("message dispatch finished with business error", "error", err)
			return err
		}
		log.Error("message dispatch failed", "error", err)
		return domain.WrapBusinessError(err)
	}

	log.Debug("message processed")
	return nil
}

// routeTextMessage роутит в команду/текст
func (s *Service) routeTextMessage(ctx context.Context, user *domain.User, chatID int64, text string, updateID int64) error {
	if IsCommand(text) {
		command := ParseCommand(text)
		return s.Usecase.HandleCommand(ctx, user, chatID, command, updateID)
	}

	return s.Usecase.HandleText(ctx, user, chatID, text, updateID)
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
