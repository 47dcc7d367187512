package lookup

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/usecases/lookup/texts"
)

// HandleAdminPanel обрабатывает /admin: сводка по базе и админская клавиатура
func (s *Service) HandleAdminPanel(ctx context.Context, user *domain.User, chatID int64) error {
	if !s.isAdmin(user.UserID) {
		return s.sendMessage(ctx, chatID, texts.AccessDenied)
	}

	totalUsers, err := s.UserRepo.CountAll(ctx)
	if err != nil {
		s.Log.Error("failed to count users", "error", err)
	}
	bannedUsers, err := s.UserRepo.CountBanned(ctx)
	if err != nil {
		s.Log.Error("failed to count banned users", "error", err)
	}
	protectedNumbers, err := s.ProtectedRepo.Count(ctx)
	if err != nil {
		s.Log.Error("failed to count protected numbers", "error", err)
	}
	totalSearches, err := s.HistoryRepo.CountAll(ctx)
	if err != nil {
		s.Log.Error("failed to count searches", "error", err)
	}

	return s.sendWithKeyboard(ctx, chatID,
		texts.FormatAdminPanel(totalUsers, bannedUsers, protectedNumbers, totalSearches),
		adminKeyboard())
}

// HandleAdminText разбирает модераторские директивы в свободном тексте.
// Правила проверяются строго по порядку; первое совпавшее выполняется.
// Возвращает false, если текст не является директивой - тогда он пойдёт
// дальше по обычному конвейеру поиска.
func (s *Service) HandleAdminText(ctx context.Context, user *domain.User, chatID int64, text string) (bool, error) {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 3)

	// Каждое правило валидирует только те токены, которые потребляет:
	// хвост после них не мешает срабатыванию директивы.

	// <user_id> <amount> - начисление кредитов
	if len(parts) >= 2 {
		targetID, errID := strconv.ParseInt(parts[0], 10, 64)
		amount, errAmount := strconv.ParseInt(parts[1], 10, 64)
		if errID == nil && errAmount == nil && amount > 0 {
			return true, s.grantCredits(ctx, chatID, targetID, amount)
		}
	}

	switch parts[0] {
	case "ban":
		// ban <user_id> <reason> - причина обязательна
		if len(parts) == 3 {
			if targetID, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
				return true, s.banUser(ctx, chatID, user.UserID, targetID, parts[2])
			}
		}
	case "unban":
		if len(parts) >= 2 {
			if targetID, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
				return true, s.unbanUser(ctx, chatID, targetID)
			}
		}
	case "protect":
		if len(parts) >= 2 && domain.PhonePattern.MatchString(parts[1]) {
			return true, s.protectNumber(ctx, chatID, user.UserID, parts[1])
		}
	case "unprotect":
		if len(parts) >= 2 {
			return true, s.unprotectNumber(ctx, chatID, parts[1])
		}
	}

	return false, nil
}

func (s *Service) grantCredits(ctx context.Context, chatID, targetID, amount int64) error {
	if _, err := s.UserRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return s.sendMessage(ctx, chatID, texts.UserNotFound)
		}
		return err
	}

	if err := s.UserRepo.AddCredits(ctx, targetID, amount); err != nil {
		s.Log.Error("failed to add credits",
			"error", err,
			"user_id", targetID,
			"amount", amount,
		)
		return err
	}

	s.Log.Info("credits granted",
		"user_id", targetID,
		"amount", amount,
	)

	return s.sendMarkdown(ctx, chatID, texts.FormatCreditsAdded(amount, targetID))
}

func (s *Service) banUser(ctx context.Context, chatID, adminID, targetID int64, reason string) error {
	if _, err := s.UserRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return s.sendMessage(ctx, chatID, texts.UserNotFound)
		}
		return err
	}

	if err := s.UserRepo.Ban(ctx, targetID, adminID, reason); err != nil {
		s.Log.Error("failed to ban user",
			"error", err,
			"user_id", targetID,
		)
		return err
	}

	s.Log.Info("user banned",
		"user_id", targetID,
		"admin_id", adminID,
		"reason", reason,
	)

	return s.sendMarkdown(ctx, chatID, texts.FormatUserBanned(targetID, reason))
}

func (s *Service) unbanUser(ctx context.Context, chatID, targetID int64) error {
	if _, err := s.UserRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return s.sendMessage(ctx, chatID, texts.UserNotFound)
		}
		return err
	}

	if err := s.UserRepo.Unban(ctx, targetID); err != nil {
		s.Log.Error("failed to unban user",
			"error", err,
			"user_id", targetID,
		)
		return err
	}

	s.Log.Info("user unbanned", "user_id", targetID)

	return s.sendMarkdown(ctx, chatID, texts.FormatUserUnbanned(targetID))
}

func (s *Service) protectNumber(ctx context.Context, chatID, adminID int64, phoneNumber string) error {
	created, err := s.ProtectedRepo.Protect(ctx, phoneNumber, adminID, "")
	if err != nil {
		s.Log.Error("failed to protect number",
			"error", err,
			"phone_number", phoneNumber,
		)
		return err
	}

	if !created {
		s.Log.Debug("number already protected", "phone_number", phoneNumber)
	}

	return s.sendMarkdown(ctx, chatID, texts.FormatNumberProtected(phoneNumber))
}

func (s *Service) unprotectNumber(ctx context.Context, chatID int64, phoneNumber string) error {
	if err := s.ProtectedRepo.Unprotect(ctx, phoneNumber); err != nil {
		s.Log.Error("failed to unprotect number",
			"error", err,
			"phone_number", phoneNumber,
		)
		return err
	}

	return s.sendMarkdown(ctx, chatID, texts.FormatNumberUnprotected(phoneNumber))
}
