package historyRepo

import (
	"context"
	"io"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/sqlite"
	ports "github.com/admin/tg-bots/info-bot/internal/ports/repository"
)

func newTestRepo(t *testing.T) (ports.IHistoryRepo, *sqlite.DB) {
	t.Helper()

	cfg := &sqlite.Config{Path: ":memory:"}
	db, err := cfg.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, sqlite.RunMigrations(db, log))

	persistence := sqlite.NewDB(db)
	return New(persistence, log), persistence
}

func seedUser(t *testing.T, db *sqlite.DB, userID int64) {
	t.Helper()
	require.NoError(t, db.Exec(context.Background(),
		`INSERT INTO users (user_id, first_name) VALUES (?, ?)`, userID, "Test"))
}

func TestAppendAndCount(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	seedUser(t, db, 1001)
	seedUser(t, db, 1002)

	require.NoError(t, repo.Append(ctx, 1001, "phone", "9876543210"))
	require.NoError(t, repo.Append(ctx, 1001, "ip", "1.2.3.4"))
	require.NoError(t, repo.Append(ctx, 1002, "phone", "6000000000"))

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	byUser, err := repo.CountByUser(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byUser)

	byUser, err = repo.CountByUser(ctx, 777)
	require.NoError(t, err)
	assert.Equal(t, int64(0), byUser)
}

func TestStatsByService(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	seedUser(t, db, 1001)

	require.NoError(t, repo.Append(ctx, 1001, "phone", "9876543210"))
	require.NoError(t, repo.Append(ctx, 1001, "phone", "6000000000"))
	require.NoError(t, repo.Append(ctx, 1001, "pincode", "110006"))

	stats, err := repo.StatsByService(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// сортировка по количеству по убыванию
	assert.Equal(t, "phone", stats[0].ServiceType)
	assert.Equal(t, int64(2), stats[0].Count)
	assert.Equal(t, "pincode", stats[1].ServiceType)
	assert.Equal(t, int64(1), stats[1].Count)
}
