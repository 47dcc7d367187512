package lookup

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/usecases/lookup/texts"
)

// HandleCommand обрабатывает слэш-команду. command приходит без слэша
// и аргументов, сопоставление чувствительно к регистру.
func (s *Service) HandleCommand(ctx context.Context, user *domain.User, chatID int64, command string, updateID int64) error {
	switch command {
	case "start":
		return s.HandleStart(ctx, user, chatID)
	case "help":
		return s.HandleHelp(ctx, user, chatID)
	case "credits":
		return s.HandleCredits(ctx, user, chatID)
	case "admin":
		return s.HandleAdminPanel(ctx, user, chatID)
	case "stats":
		return s.HandleStats(ctx, user, chatID)
	default:
		if lt, ok := domain.LookupByCommand(s.Registry, command); ok {
			return s.sendMarkdown(ctx, chatID, texts.FormatLookupPrompt(lt))
		}
		return s.sendMessage(ctx, chatID, texts.UnknownCommand)
	}
}

// HandleStart обрабатывает /start: гейт канала, уведомление о бане,
// идемпотентный bootstrap и приветствие с основной клавиатурой.
// Единственное место, где забаненный пользователь получает ответ.
func (s *Service) HandleStart(ctx context.Context, user *domain.User, chatID int64) error {
	if !s.isChannelMember(ctx, user.UserID) {
		return s.sendWithKeyboard(ctx, chatID, texts.JoinChannel, joinChannelKeyboard(s.ChannelLink))
	}

	if user.IsBanned {
		return s.sendMarkdown(ctx, chatID, texts.FormatBanNotice(user.BanReason, user.BanDate))
	}

	if err := s.UserRepo.UpdateActivity(ctx, user.UserID); err != nil {
		s.Log.Warn("failed to update activity",
			"error", err,
			"user_id", user.UserID,
		)
	}

	return s.sendWithKeyboard(ctx, chatID,
		texts.FormatWelcome(user.FirstName, user.Credits),
		mainKeyboard(s.isAdmin(user.UserID)))
}

// HandleHelp обрабатывает /help
func (s *Service) HandleHelp(ctx context.Context, user *domain.User, chatID int64) error {
	if user.IsBanned {
		return nil
	}

	return s.sendWithKeyboard(ctx, chatID, texts.Help, mainKeyboard(s.isAdmin(user.UserID)))
}

// HandleCredits обрабатывает /credits
func (s *Service) HandleCredits(ctx context.Context, user *domain.User, chatID int64) error {
	if user.IsBanned {
		return nil
	}

	credits, err := s.balance(ctx, user.UserID)
	if err != nil {
		s.Log.Error("failed to get balance",
			"error", err,
			"user_id", user.UserID,
		)
		credits = user.Credits
	}

	return s.sendWithKeyboard(ctx, chatID,
		texts.FormatCredits(user.FirstName, credits),
		mainKeyboard(s.isAdmin(user.UserID)))
}

// HandleBuyCredits обрабатывает кнопку "Buy Credits". Сама покупка
// происходит вне бота - админ начисляет кредиты вручную.
func (s *Service) HandleBuyCredits(ctx context.Context, user *domain.User, chatID int64) error {
	if user.IsBanned {
		return nil
	}

	return s.sendWithKeyboard(ctx, chatID,
		texts.FormatBuyCredits(user.UserID),
		mainKeyboard(s.isAdmin(user.UserID)))
}

// HandleStats обрабатывает /stats: личная статистика, админу добавляется общая
func (s *Service) HandleStats(ctx context.Context, user *domain.User, chatID int64) error {
	text := texts.FormatUserStats(user)

	if s.isAdmin(user.UserID) {
		totalUsers, err := s.UserRepo.CountAll(ctx)
		if err != nil {
			s.Log.Error("failed to count users", "error", err)
		}
		totalSearches, err := s.HistoryRepo.CountAll(ctx)
		if err != nil {
			s.Log.Error("failed to count searches", "error", err)
		}
		text += texts.FormatAdminStatsSuffix(totalUsers, totalSearches)
	}

	return s.sendWithKeyboard(ctx, chatID, text, mainKeyboard(s.isAdmin(user.UserID)))
}
