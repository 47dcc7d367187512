package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	ports "github.com/admin/tg-bots/info-bot/internal/ports/repository"
	"github.com/admin/tg-bots/info-bot/internal/ports/persistence"
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с пользователями
func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Create создаёт пользователя, если его ещё нет. Повторный вызов для
// существующего user_id ничего не меняет (идемпотентный bootstrap).
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (user_id, username, first_name, last_name, credits)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING`
	rowsAffected, err := r.db.ExecWithResult(ctx, query,
		user.UserID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Credits)
	if err != nil {
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.UserID)
		return fmt.Errorf("failed to create user: %w", err)
	}
	if rowsAffected > 0 {
		r.Log.Info("user created",
			"user_id", user.UserID)
	}
	return nil
}

// GetByID получает пользователя по Telegram user_id
func (r *Repository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT user_id, username, first_name, last_name, credits, total_searches,
		is_banned, ban_reason, banned_by, ban_date, joined_date, last_active
		FROM users WHERE user_id = ?`
	err := r.db.Get(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.Log.Error("failed to get user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateActivity обновляет время последней активности
func (r *Repository) UpdateActivity(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_active = CURRENT_TIMESTAMP WHERE user_id = ?`
	if err := r.db.Exec(ctx, query, userID); err != nil {
		r.Log.Error("failed to update activity",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

// DeductCredits атомарно списывает amount кредитов одним условным UPDATE.
// WHERE credits >= amount гарантирует, что из двух конкурентных списаний
// при балансе на одно пройдёт ровно одно.
func (r *Repository) DeductCredits(ctx context.Context, userID int64, amount int64) (bool, error) {
	query := `UPDATE users SET credits = credits - ? WHERE user_id = ? AND credits >= ?`
	rowsAffected, err := r.db.ExecWithResult(ctx, query, amount, userID, amount)
	if err != nil {
		r.Log.Error("failed to deduct credits",
			"error", err,
			"user_id", userID,
			"amount", amount)
		return false, fmt.Errorf("failed to deduct credits: %w", err)
	}
	return rowsAffected > 0, nil
}

// AddCredits безусловно начисляет кредиты (грант администратора или возврат)
func (r *Repository) AddCredits(ctx context.Context, userID int64, amount int64) error {
	query := `UPDATE users SET credits = credits + ? WHERE user_id = ?`
	if err := r.db.Exec(ctx, query, amount, userID); err != nil {
		r.Log.Error("failed to add credits",
			"error", err,
			"user_id", userID,
			"amount", amount)
		return fmt.Errorf("failed to add credits: %w", err)
	}
	return nil
}

// GetCredits возвращает текущий баланс (0 для неизвестного пользователя)
func (r *Repository) GetCredits(ctx context.Context, userID int64) (int64, error) {
	var credits int64
	query := `SELECT credits FROM users WHERE user_id = ?`
	err := r.db.Get(ctx, &credits, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get credits: %w", err)
	}
	return credits, nil
}

// IncrementSearches увеличивает счётчик поисков пользователя
func (r *Repository) IncrementSearches(ctx context.Context, userID int64) error {
	query := `UPDATE users SET total_searches = total_searches + 1 WHERE user_id = ?`
	if err := r.db.Exec(ctx, query, userID); err != nil {
		r.Log.Error("failed to increment searches",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to increment searches: %w", err)
	}
	return nil
}

// Ban выставляет все поля бана вместе
func (r *Repository) Ban(ctx context.Context, userID int64, adminID int64, reason string) error {
	query := `UPDATE users SET is_banned = 1, ban_reason = ?, banned_by = ?, ban_date = CURRENT_TIMESTAMP
		WHERE user_id = ?`
	if err := r.db.Exec(ctx, query, reason, adminID, userID); err != nil {
		r.Log.Error("failed to ban user",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to ban user: %w", err)
	}
	r.Log.Info("user banned",
		"user_id", userID,
		"banned_by", adminID)
	return nil
}

// Unban сбрасывает все поля бана вместе
func (r *Repository) Unban(ctx context.Context, userID int64) error {
	query := `UPDATE users SET is_banned = 0, ban_reason = '', banned_by = NULL, ban_date = NULL
		WHERE user_id = ?`
	if err := r.db.Exec(ctx, query, userID); err != nil {
		r.Log.Error("failed to unban user",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to unban user: %w", err)
	}
	r.Log.Info("user unbanned",
		"user_id", userID)
	return nil
}

// CountAll возвращает общее количество пользователей
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Get(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountBanned возвращает количество забаненных пользователей
func (r *Repository) CountBanned(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Get(ctx, &count, `SELECT COUNT(*) FROM users WHERE is_banned = 1`)
	if err != nil {
		return 0, fmt.Errorf("failed to count banned users: %w", err)
	}
	return count, nil
}
