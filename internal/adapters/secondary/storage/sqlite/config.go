package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const busyTimeoutMillis = 5000

type Config struct {
	Path string `envconfig:"PATH" default:"users.db"`
}

// NewConnection открывает базу и настраивает соединение.
// Пул ограничен одним соединением: sqlite допускает только одного писателя,
// а условное списание кредитов должно быть единственным writer'ом в моменте.
func (c *Config) NewConnection() (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		c.Path, busyTimeoutMillis)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db error: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db error: %w", err)
	}

	return db, nil
}
