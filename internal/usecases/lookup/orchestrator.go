package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/usecases/lookup/texts"
)

// ProcessLookup выполняет поиск по распознанному запросу: защита номера,
// проверка и списание баланса, запись истории, обращение к upstream-сервису.
// При отказе upstream-сервиса списанные кредиты возвращаются; запись в
// истории при этом сохраняется.
func (s *Service) ProcessLookup(ctx context.Context, user *domain.User, chatID int64, lt domain.LookupType, query string) error {
	if lt.Key == "phone" {
		protected, err := s.ProtectedRepo.IsProtected(ctx, query)
		if err != nil {
			s.Log.Error("failed to check protection",
				"error", err,
				"query", query,
			)
			return fmt.Errorf("failed to check protection: %w", err)
		}
		if protected {
			s.Log.Info("lookup blocked by protection",
				"user_id", user.UserID,
				"service", lt.Key,
			)
			return s.sendMarkdown(ctx, chatID, texts.ProtectedNumber)
		}
	}

	credits, err := s.balance(ctx, user.UserID)
	if err != nil {
		s.Log.Error("failed to get balance",
			"error", err,
			"user_id", user.UserID,
		)
		return fmt.Errorf("failed to get balance: %w", err)
	}
	if credits < lt.Credits {
		return s.sendMarkdown(ctx, chatID, texts.FormatInsufficientCredits(credits, lt.Credits))
	}

	if err := s.charge(ctx, user.UserID, lt.Credits); err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			// Баланс изменился между проверкой и списанием
			return s.sendMessage(ctx, chatID, texts.ChargeFailed)
		}
		return err
	}

	if err := s.HistoryRepo.Append(ctx, user.UserID, lt.Key, query); err != nil {
		s.Log.Error("failed to append history",
			"error", err,
			"user_id", user.UserID,
			"service", lt.Key,
		)
	}
	if err := s.UserRepo.IncrementSearches(ctx, user.UserID); err != nil {
		s.Log.Error("failed to increment searches",
			"error", err,
			"user_id", user.UserID,
		)
	}

	if err := s.sendMessage(ctx, chatID, texts.Processing); err != nil {
		s.Log.Warn("failed to send processing ack", "error", err)
	}

	payload, err := s.fetchWithCache(ctx, lt, query)
	if err != nil {
		s.Log.Error("upstream lookup failed",
			"error", err,
			"service", lt.Key,
			"user_id", user.UserID,
		)
		if refundErr := s.refund(ctx, user.UserID, lt.Credits); refundErr != nil {
			s.Log.Error("failed to refund credits",
				"error", refundErr,
				"user_id", user.UserID,
				"amount", lt.Credits,
			)
		}
		return s.sendMessage(ctx, chatID, texts.APIError)
	}

	remaining, err := s.balance(ctx, user.UserID)
	if err != nil {
		s.Log.Warn("failed to get balance after lookup",
			"error", err,
			"user_id", user.UserID,
		)
		remaining = credits - lt.Credits
	}

	s.Log.Info("lookup completed",
		"user_id", user.UserID,
		"service", lt.Key,
		"credits_used", lt.Credits,
		"credits_remaining", remaining,
	)

	return s.sendMarkdown(ctx, chatID,
		texts.FormatLookupResult(lt.Name, query, lt.Credits, remaining, texts.FormatResponseBody(payload)))
}

// fetchWithCache обращается к upstream-сервису через кэш ответов,
// если тот настроен. Ошибки кэша не фатальны - запрос уходит напрямую.
func (s *Service) fetchWithCache(ctx context.Context, lt domain.LookupType, query string) ([]byte, error) {
	if s.Cache == nil {
		return s.LookupAPI.Fetch(ctx, lt, query)
	}

	key := fmt.Sprintf("lookup:%s:%s", lt.Key, query)

	if cached, err := s.Cache.Get(ctx, key); err == nil && cached != "" {
		s.Log.Debug("cache hit", "key", key)
		return []byte(cached), nil
	}

	payload, err := s.LookupAPI.Fetch(ctx, lt, query)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Set(ctx, key, string(payload), s.CacheTTL); err != nil {
		s.Log.Warn("failed to cache response",
			"error", err,
			"key", key,
		)
	}

	return payload, nil
}
