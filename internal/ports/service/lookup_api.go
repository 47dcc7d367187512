package service

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// ILookupAPI интерфейс клиента upstream-сервисов поиска
type ILookupAPI interface {
	Fetch(ctx context.Context, lt domain.LookupType, query string) ([]byte, error)
}
