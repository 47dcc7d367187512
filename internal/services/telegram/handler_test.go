package telegram

import (
	"context"
	"errors"
	"io"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

type fakeUsecase struct {
	commands []string
	texts    []string
	failWith error
}

func (f *fakeUsecase) GetOrCreateUser(_ context.Context, tgUser *domain.TelegramUser) (*domain.User, error) {
	return &domain.User{UserID: tgUser.ID, Credits: domain.DefaultCredits}, nil
}

func (f *fakeUsecase) HandleCommand(_ context.Context, _ *domain.User, _ int64, command string, _ int64) error {
	f.commands = append(f.commands, command)
	return f.failWith
}

func (f *fakeUsecase) HandleText(_ context.Context, _ *domain.User, _ int64, text string, _ int64) error {
	f.texts = append(f.texts, text)
	return f.failWith
}

func newTestService() (*Service, *fakeUsecase) {
	usecase := &fakeUsecase{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(usecase, log), usecase
}

func makeUpdate(chatType, text string, isBot bool) *domain.Update {
	return &domain.Update{
		UpdateID: 1,
		Message: &domain.Message{
			MessageID: 1,
			From:      &domain.TelegramUser{ID: 1001, IsBot: isBot, FirstName: "Test"},
			Chat:      &domain.Chat{ID: 555, Type: chatType},
			Text:      &text,
		},
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/start", "start"},
		{"/help@info_bot", "help"},
		{"/phone 9876543210", "phone"},
		{"/stats@info_bot extra", "stats"},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.input))
		})
	}
}

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("/start"))
	assert.False(t, IsCommand("start"))
	assert.False(t, IsCommand(""))
	assert.False(t, IsCommand("9876543210"))
}

func TestHandleUpdateRoutesCommand(t *testing.T) {
	svc, usecase := newTestService()

	err := svc.HandleUpdate(context.Background(), makeUpdate("private", "/help", false))
	require.NoError(t, err)

	assert.Equal(t, []string{"help"}, usecase.commands)
	assert.Empty(t, usecase.texts)
}

func TestHandleUpdateRoutesText(t *testing.T) {
	svc, usecase := newTestService()

	err := svc.HandleUpdate(context.Background(), makeUpdate("private", "9876543210", false))
	require.NoError(t, err)

	assert.Empty(t, usecase.commands)
	assert.Equal(t, []string{"9876543210"}, usecase.texts)
}

func TestHandleUpdateIgnoresBots(t *testing.T) {
	svc, usecase := newTestService()

	err := svc.HandleUpdate(context.Background(), makeUpdate("private", "/start", true))
	require.NoError(t, err)

	assert.Empty(t, usecase.commands)
	assert.Empty(t, usecase.texts)
}

func TestHandleUpdateIgnoresGroups(t *testing.T) {
	svc, usecase := newTestService()

	err := svc.HandleUpdate(context.Background(), makeUpdate("supergroup", "/start", false))
	require.NoError(t, err)

	assert.Empty(t, usecase.commands)
	assert.Empty(t, usecase.texts)
}

// Ошибка диспетчеризации возвращается как бизнес-ошибка: она уже
// залогирована под request_id и не должна логироваться повторно выше
func TestHandleUpdateWrapsDispatchError(t *testing.T) {
	svc, usecase := newTestService()
	usecase.failWith = errors.New("upstream unavailable")

	err := svc.HandleUpdate(context.Background(), makeUpdate("private", "9876543210", false))
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
}

// Уже обёрнутая ошибка проходит наверх без повторной обёртки
func TestHandleUpdatePassesBusinessError(t *testing.T) {
	svc, usecase := newTestService()
	usecase.failWith = domain.WrapBusinessError(errors.New("failed to send message"))

	err := svc.HandleUpdate(context.Background(), makeUpdate("private", "/help", false))
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
}

func TestHandleUpdateNil(t *testing.T) {
	svc, _ := newTestService()

	assert.Error(t, svc.HandleUpdate(context.Background(), nil))
}

func TestHandleUpdateWithoutMessage(t *testing.T) {
	svc, usecase := newTestService()

	err := svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 7})
	require.NoError(t, err)

	assert.Empty(t, usecase.commands)
	assert.Empty(t, usecase.texts)
}
