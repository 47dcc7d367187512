package persistence

import "context"

// Persistence абстракция над хранилищем для репозиториев.
// Все операции бота - одиночные записи/чтения, транзакции не нужны:
// условное списание кредитов выражается одним UPDATE с WHERE-guard.
type Persistence interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error)
}
