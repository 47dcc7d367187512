package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DB обёртка над sqlx.DB, реализует ports/persistence.Persistence
type DB struct {
	Db *sqlx.DB
}

func NewDB(db *sqlx.DB) *DB {
	return &DB{Db: db}
}

// Get выполняет запрос и сканирует результат в структуру (одна запись)
func (d *DB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.Db.GetContext(ctx, dest, query, args...)
}

// Select выполняет запрос и сканирует результаты в слайс структур
func (d *DB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.Db.SelectContext(ctx, dest, query, args...)
}

// Exec выполняет запрос без возврата данных (INSERT, UPDATE, DELETE)
func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := d.Db.ExecContext(ctx, query, args...)
	return err
}

// ExecWithResult выполняет запрос и возвращает количество затронутых строк
func (d *DB) ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := d.Db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Close закрывает подключение к базе данных
func (d *DB) Close() error {
	return d.Db.Close()
}
