package telegram

// APIResponse общая часть ответа Telegram Bot API
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}
