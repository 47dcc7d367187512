package lookup

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// Кредитный леджер: charge/refund/balance поверх user-репозитория.
// Charge - единственная операция с условием; refund и balance тривиальны.

// charge атомарно списывает amount кредитов, если баланса хватает.
// Проигранная гонка или нехватка баланса - ErrInsufficientCredits.
func (s *Service) charge(ctx context.Context, userID int64, amount int64) error {
	ok, err := s.UserRepo.DeductCredits(ctx, userID, amount)
	if err != nil {
		return fmt.Errorf("charge failed: %w", err)
	}
	if !ok {
		return domain.ErrInsufficientCredits
	}
	s.Log.Debug("credits charged",
		"user_id", userID,
		"amount", amount,
	)
	return nil
}

// refund безусловно возвращает списанные кредиты после отказа upstream-сервиса
func (s *Service) refund(ctx context.Context, userID int64, amount int64) error {
	if err := s.UserRepo.AddCredits(ctx, userID, amount); err != nil {
		return fmt.Errorf("refund failed: %w", err)
	}
	s.Log.Info("credits refunded",
		"user_id", userID,
		"amount", amount,
	)
	return nil
}

// balance возвращает текущий баланс (0 для неизвестного пользователя)
func (s *Service) balance(ctx context.Context, userID int64) (int64, error) {
	return s.UserRepo.GetCredits(ctx, userID)
}
