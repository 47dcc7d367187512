package repository

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// IProtectedRepo интерфейс для работы с защищёнными номерами
type IProtectedRepo interface {
	IsProtected(ctx context.Context, phoneNumber string) (bool, error)
	// Protect добавляет защиту; повторная защита того же номера - no-op.
	// Возвращает false, если номер уже был защищён.
	Protect(ctx context.Context, phoneNumber string, adminID int64, reason string) (bool, error)
	Unprotect(ctx context.Context, phoneNumber string) error
	GetAll(ctx context.Context) ([]*domain.ProtectedNumber, error)
	Count(ctx context.Context) (int64, error)
}
