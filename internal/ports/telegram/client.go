package telegram

import "context"

// IClient интерфейс клиента Telegram Bot API, который нужен бизнес-логике
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	SendMarkdownWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error
	// GetChatMemberStatus возвращает статус пользователя в канале
	// ("member", "administrator", "creator", "left", ...)
	GetChatMemberStatus(ctx context.Context, chatID string, userID int64) (string, error)
}
