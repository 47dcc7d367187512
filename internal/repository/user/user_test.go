package userRepo

import (
	"context"
	"io"
	"sync"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/sqlite"
	"github.com/admin/tg-bots/info-bot/internal/domain"
	ports "github.com/admin/tg-bots/info-bot/internal/ports/repository"
)

func newTestRepo(t *testing.T) ports.IUserRepo {
	t.Helper()

	cfg := &sqlite.Config{Path: ":memory:"}
	db, err := cfg.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, sqlite.RunMigrations(db, log))

	return New(sqlite.NewDB(db), log)
}

func createUser(t *testing.T, repo ports.IUserRepo, userID int64) *domain.User {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.User{
		UserID:    userID,
		FirstName: "Test",
		Credits:   domain.DefaultCredits,
	}))

	user, err := repo.GetByID(ctx, userID)
	require.NoError(t, err)
	return user
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)

	user := createUser(t, repo, 1001)

	assert.Equal(t, int64(1001), user.UserID)
	assert.Equal(t, int64(domain.DefaultCredits), user.Credits)
	assert.Equal(t, int64(0), user.TotalSearches)
	assert.False(t, user.IsBanned)
	assert.False(t, user.JoinedDate.IsZero())
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Повторный Create для существующего user_id не трогает баланс
func TestCreateIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	createUser(t, repo, 1001)
	require.NoError(t, repo.AddCredits(ctx, 1001, 30))

	require.NoError(t, repo.Create(ctx, &domain.User{
		UserID:    1001,
		FirstName: "Test",
		Credits:   domain.DefaultCredits,
	}))

	credits, err := repo.GetCredits(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(50), credits)
}

func TestDeductCredits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	ok, err := repo.DeductCredits(ctx, 1001, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	credits, err := repo.GetCredits(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(19), credits)
}

func TestDeductCreditsInsufficient(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	ok, err := repo.DeductCredits(ctx, 1001, 21)
	require.NoError(t, err)
	assert.False(t, ok)

	// баланс не изменился
	credits, err := repo.GetCredits(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(20), credits)
}

// Списание ровно остатка проходит, баланс уходит в ноль
func TestDeductCreditsExactBalance(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	ok, err := repo.DeductCredits(ctx, 1001, 20)
	require.NoError(t, err)
	assert.True(t, ok)

	credits, err := repo.GetCredits(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(0), credits)

	ok, err = repo.DeductCredits(ctx, 1001, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Из конкурентных списаний при балансе 20 и цене 1 пройдёт ровно 20
func TestDeductCreditsConcurrent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	const workers = 50

	var wg sync.WaitGroup
	results := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.DeductCredits(ctx, 1001, 1)
			if err == nil && ok {
				results <- true
			}
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for range results {
		succeeded++
	}
	assert.Equal(t, 20, succeeded)

	credits, err := repo.GetCredits(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(0), credits)
}

func TestDeductCreditsUnknownUser(t *testing.T) {
	repo := newTestRepo(t)

	ok, err := repo.DeductCredits(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddCredits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	require.NoError(t, repo.AddCredits(ctx, 1001, 50))

	credits, err := repo.GetCredits(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(70), credits)
}

func TestGetCreditsUnknownUser(t *testing.T) {
	repo := newTestRepo(t)

	credits, err := repo.GetCredits(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), credits)
}

func TestIncrementSearches(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	require.NoError(t, repo.IncrementSearches(ctx, 1001))
	require.NoError(t, repo.IncrementSearches(ctx, 1001))

	user, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.TotalSearches)
}

func TestBanUnban(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, 1001)

	require.NoError(t, repo.Ban(ctx, 1001, 777, "spamming"))

	user, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, user.IsBanned)
	assert.Equal(t, "spamming", user.BanReason)
	require.NotNil(t, user.BannedBy)
	assert.Equal(t, int64(777), *user.BannedBy)
	assert.NotNil(t, user.BanDate)

	require.NoError(t, repo.Unban(ctx, 1001))

	user, err = repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.False(t, user.IsBanned)
	assert.Empty(t, user.BanReason)
	assert.Nil(t, user.BannedBy)
	assert.Nil(t, user.BanDate)
}

func TestCounts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	createUser(t, repo, 1001)
	createUser(t, repo, 1002)
	createUser(t, repo, 1003)
	require.NoError(t, repo.Ban(ctx, 1002, 777, "abuse"))

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	banned, err := repo.CountBanned(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), banned)
}
