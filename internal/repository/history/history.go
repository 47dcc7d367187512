package historyRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/ports/persistence"
	ports "github.com/admin/tg-bots/info-bot/internal/ports/repository"
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с историей поиска
func New(db persistence.Persistence, log *slog.Logger) ports.IHistoryRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Append добавляет запись истории. Записи никогда не изменяются и не удаляются.
func (r *Repository) Append(ctx context.Context, userID int64, serviceType, query string) error {
	q := `INSERT INTO search_history (user_id, service_type, query) VALUES (?, ?, ?)`
	if err := r.db.Exec(ctx, q, userID, serviceType, query); err != nil {
		r.Log.Error("failed to append search history",
			"error", err,
			"user_id", userID,
			"service_type", serviceType)
		return fmt.Errorf("failed to append search history: %w", err)
	}
	r.Log.Debug("search history appended",
		"user_id", userID,
		"service_type", serviceType)
	return nil
}

// CountAll возвращает общее количество поисков
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Get(ctx, &count, `SELECT COUNT(*) FROM search_history`)
	if err != nil {
		return 0, fmt.Errorf("failed to count search history: %w", err)
	}
	return count, nil
}

// CountByUser возвращает количество поисков одного пользователя
func (r *Repository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.Get(ctx, &count, `SELECT COUNT(*) FROM search_history WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count search history by user: %w", err)
	}
	return count, nil
}

// StatsByService возвращает количество поисков по каждому сервису
func (r *Repository) StatsByService(ctx context.Context) ([]domain.ServiceStat, error) {
	var stats []domain.ServiceStat
	q := `SELECT service_type, COUNT(*) AS count FROM search_history
		GROUP BY service_type ORDER BY count DESC`
	if err := r.db.Select(ctx, &stats, q); err != nil {
		return nil, fmt.Errorf("failed to get search stats: %w", err)
	}
	return stats, nil
}
