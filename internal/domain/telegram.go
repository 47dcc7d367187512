package domain

// дока - https://core.telegram.org/bots/api

// Update - входящее обновление от Telegram Bot API
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// CallbackQuery - callback query от inline кнопки
type CallbackQuery struct {
	ID      string        `json:"id"`
	From    *TelegramUser `json:"from,omitempty"`
	Message *Message      `json:"message,omitempty"`
	Data    *string       `json:"data,omitempty"`
}

// Message - сообщение от Telegram Bot API
type Message struct {
	MessageID int64         `json:"message_id"`
	From      *TelegramUser `json:"from,omitempty"`
	Chat      *Chat         `json:"chat"`
	Date      int64         `json:"date"`
	Text      *string       `json:"text,omitempty"`
}

// TelegramUser - пользователь Telegram (не domain.User)
type TelegramUser struct {
	ID           int64   `json:"id"`
	IsBot        bool    `json:"is_bot"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name,omitempty"`
	Username     *string `json:"username,omitempty"`
	LanguageCode *string `json:"language_code,omitempty"`
}

// Chat - чат в Telegram
type Chat struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"` // "private", "group", "supergroup", "channel"
	Title     *string `json:"title,omitempty"`
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}
