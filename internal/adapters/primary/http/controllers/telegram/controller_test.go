package telegram

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	telegramService "github.com/admin/tg-bots/info-bot/internal/services/telegram"
)

type fakeUsecase struct {
	handled []string
}

func (f *fakeUsecase) GetOrCreateUser(_ context.Context, tgUser *domain.TelegramUser) (*domain.User, error) {
	return &domain.User{UserID: tgUser.ID}, nil
}

func (f *fakeUsecase) HandleCommand(_ context.Context, _ *domain.User, _ int64, command string, _ int64) error {
	f.handled = append(f.handled, "/"+command)
	return nil
}

func (f *fakeUsecase) HandleText(_ context.Context, _ *domain.User, _ int64, text string, _ int64) error {
	f.handled = append(f.handled, text)
	return nil
}

func newTestRouter(secretToken string) (*gin.Engine, *fakeUsecase) {
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	usecase := &fakeUsecase{}
	svc := telegramService.New(usecase, log)

	router := gin.New()
	New(svc, secretToken, log).RegisterRoutes(router)

	return router, usecase
}

const updateJSON = `{
	"update_id": 10,
	"message": {
		"message_id": 1,
		"from": {"id": 1001, "is_bot": false, "first_name": "Test"},
		"chat": {"id": 555, "type": "private"},
		"date": 1700000000,
		"text": "/start"
	}
}`

func TestWebhookHandlesUpdate(t *testing.T) {
	router, usecase := newTestRouter("")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(updateJSON))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"/start"}, usecase.handled)
}

// Кривой JSON дропается с 200, иначе Telegram бесконечно ретраит обновление
func TestWebhookMalformedJSON(t *testing.T) {
	router, usecase := newTestRouter("")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, usecase.handled)
}

func TestWebhookSecretToken(t *testing.T) {
	router, usecase := newTestRouter("s3cret")

	// без заголовка - отказ
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(updateJSON))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, usecase.handled)

	// с верным заголовком - обработка
	req = httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(updateJSON))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"/start"}, usecase.handled)
}

func TestWebhookLiveness(t *testing.T) {
	router, _ := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
