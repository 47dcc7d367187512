package lookup

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// Ошибки отправки логируются здесь и оборачиваются в BusinessError,
// чтобы верхние слои не логировали их повторно.

// sendMessage отправляет сообщение пользователю через Telegram Client
func (s *Service) sendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.Telegram.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return domain.WrapBusinessError(fmt.Errorf("failed to send message: %w", err))
	}

	return nil
}

// sendMarkdown отправляет сообщение с Markdown-разметкой
func (s *Service) sendMarkdown(ctx context.Context, chatID int64, text string) error {
	if err := s.Telegram.SendMarkdown(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send markdown message",
			"error", err,
			"chat_id", chatID,
		)
		return domain.WrapBusinessError(fmt.Errorf("failed to send markdown message: %w", err))
	}

	return nil
}

// sendWithKeyboard отправляет Markdown-сообщение с клавиатурой
func (s *Service) sendWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	if err := s.Telegram.SendMarkdownWithKeyboard(ctx, chatID, text, keyboard); err != nil {
		s.Log.Error("failed to send message with keyboard",
			"error", err,
			"chat_id", chatID,
		)
		return domain.WrapBusinessError(fmt.Errorf("failed to send message with keyboard: %w", err))
	}

	return nil
}
