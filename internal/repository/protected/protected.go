package protectedRepo

import (
	"context"
	"database/sql"
	"errors"
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

// New создаёт новый репозиторий для работы с защищёнными номерами
func New(db persistence.Persistence, log *slog.Logger) ports.IProtectedRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// IsProtected проверяет, защищён ли номер
func (r *Repository) IsProtected(ctx context.Context, phoneNumber string) (bool, error) {
	var id int64
	query := `SELECT id FROM protected_numbers WHERE phone_number = ?`
	err := r.db.Get(ctx, &id, query, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		r.Log.Error("failed to check protected number",
			"error", err)
		return false, fmt.Errorf("failed to check protected number: %w", err)
	}
	return true, nil
}

// Protect добавляет защиту номера. UNIQUE-констрейнт по phone_number
// делает повторную защиту no-op'ом: возвращается false без ошибки.
func (r *Repository) Protect(ctx context.Context, phoneNumber string, adminID int64, reason string) (bool, error) {
	query := `INSERT INTO protected_numbers (phone_number, protected_by, reason)
		VALUES (?, ?, ?)
		ON CONFLICT (phone_number) DO NOTHING`
	rowsAffected, err := r.db.ExecWithResult(ctx, query, phoneNumber, adminID, reason)
	if err != nil {
		r.Log.Error("failed to protect number",
			"error", err)
		return false, fmt.Errorf("failed to protect number: %w", err)
	}
	if rowsAffected > 0 {
		r.Log.Info("number protected",
			"protected_by", adminID)
	}
	return rowsAffected > 0, nil
}

// Unprotect снимает защиту номера
func (r *Repository) Unprotect(ctx context.Context, phoneNumber string) error {
	query := `DELETE FROM protected_numbers WHERE phone_number = ?`
	if err := r.db.Exec(ctx, query, phoneNumber); err != nil {
		r.Log.Error("failed to unprotect number",
			"error", err)
		return fmt.Errorf("failed to unprotect number: %w", err)
	}
	return nil
}

// GetAll возвращает все защищённые номера (для админ-панели)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ProtectedNumber, error) {
	var numbers []*domain.ProtectedNumber
	query := `SELECT id, phone_number, protected_by, protected_date, reason
		FROM protected_numbers ORDER BY protected_date DESC`
	if err := r.db.Select(ctx, &numbers, query); err != nil {
		return nil, fmt.Errorf("failed to get protected numbers: %w", err)
	}
	return numbers, nil
}

// Count возвращает количество защищённых номеров
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Get(ctx, &count, `SELECT COUNT(*) FROM protected_numbers`)
	if err != nil {
		return 0, fmt.Errorf("failed to count protected numbers: %w", err)
	}
	return count, nil
}
