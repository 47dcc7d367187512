package repository

import (
	"context"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// IUserRepo интерфейс для работы с пользователями бота
type IUserRepo interface {
	// Create создаёт пользователя, если его ещё нет (идемпотентно)
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateActivity(ctx context.Context, userID int64) error

	// DeductCredits атомарно списывает amount, только если баланса хватает.
	// Возвращает false, если условие не выполнилось (баланс не изменён).
	DeductCredits(ctx context.Context, userID int64, amount int64) (bool, error)
	AddCredits(ctx context.Context, userID int64, amount int64) error
	GetCredits(ctx context.Context, userID int64) (int64, error)
	IncrementSearches(ctx context.Context, userID int64) error

	Ban(ctx context.Context, userID int64, adminID int64, reason string) error
	Unban(ctx context.Context, userID int64) error

	CountAll(ctx context.Context) (int64, error)
	CountBanned(ctx context.Context) (int64, error)
}
