package lookup

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/usecases/lookup/texts"
)

// buttonAction действие кнопки меню: повторный вход в обработку команды
// либо отдельный flow покупки кредитов
type buttonAction struct {
	command string
	buy     bool
}

// buttonActions маппинг подписей кнопок на действия. Точные строки с эмодзи
// живут только здесь, на границе представления.
var buttonActions = map[string]buttonAction{
	"📱 Number Info":  {command: "phone"},
	"🆔 Aadhaar":      {command: "aadhaar"},
	"🚗 Vehicle":      {command: "vehicle"},
	"🏦 IFSC":         {command: "ifsc"},
	"🌐 IP Lookup":    {command: "ip"},
	"📮 Pincode":      {command: "pincode"},
	"💎 My Credits":   {command: "credits"},
	"🛒 Buy Credits":  {buy: true},
	"ℹ️ Help":         {command: "help"},
	"👑 Admin Panel":  {command: "admin"},
	"📊 Statistics":   {command: "stats"},
	"🏠 Main Menu":    {command: "start"},
}

// HandleText обрабатывает произвольный текст: кнопки меню, директивы
// администратора, запросы по паттернам реестра. Забаненные пользователи
// не получают никакого ответа на обычные сообщения.
func (s *Service) HandleText(ctx context.Context, user *domain.User, chatID int64, text string, updateID int64) error {
	if user.IsBanned {
		s.Log.Debug("dropping message from banned user",
			"user_id", user.UserID,
			"update_id", updateID,
		)
		return nil
	}

	if err := s.UserRepo.UpdateActivity(ctx, user.UserID); err != nil {
		s.Log.Warn("failed to update activity",
			"error", err,
			"user_id", user.UserID,
		)
	}

	if action, ok := buttonActions[text]; ok {
		if action.buy {
			return s.HandleBuyCredits(ctx, user, chatID)
		}
		return s.HandleCommand(ctx, user, chatID, action.command, updateID)
	}

	if s.isAdmin(user.UserID) {
		handled, err := s.HandleAdminText(ctx, user, chatID, text)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	// Паттерны проверяются в фиксированном порядке реестра:
	// первый совпавший тип выигрывает
	if lt, ok := domain.MatchLookup(s.Registry, text); ok {
		return s.ProcessLookup(ctx, user, chatID, lt, text)
	}

	return s.sendMessage(ctx, chatID, texts.InvalidInput)
}
