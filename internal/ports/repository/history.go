package repository

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// IHistoryRepo интерфейс для работы с историей поиска (append-only)
type IHistoryRepo interface {
	Append(ctx context.Context, userID int64, serviceType, query string) error
	CountAll(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	StatsByService(ctx context.Context) ([]domain.ServiceStat, error)
}
