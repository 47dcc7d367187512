package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// UpdateHandler функция для обработки обновлений от Telegram
type UpdateHandler func(ctx context.Context, update *domain.Update) error

// Poller реализует long polling для получения обновлений от Telegram.
// Используется только для локальной разработки, в проде - webhook.
type Poller struct {
	client       *Client
	config       *Config
	handler      UpdateHandler
	lastUpdateID int64
	log          *slog.Logger
	httpClient   *http.Client // отдельный HTTP клиент с увеличенным таймаутом для polling
}

func NewPoller(client *Client, config *Config, handler UpdateHandler, log *slog.Logger) *Poller {
	pollingTimeout := config.PollingTimeout
	if pollingTimeout <= 0 {
		pollingTimeout = 30
	}
	// HTTP таймаут = polling timeout + запас (10 секунд)
	httpTimeout := time.Duration(pollingTimeout+10) * time.Second

	return &Poller{
		client:       client,
		config:       config,
		handler:      handler,
		lastUpdateID: 0,
		log:          log,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// GetUpdatesResponse ответ от Telegram API для getUpdates
type GetUpdatesResponse struct {
	APIResponse
	Result []domain.Update `json:"result"`
}

// Start запускает long polling до отмены контекста
func (p *Poller) Start(ctx context.Context) error {
	p.log.Info("starting telegram polling",
		"timeout", p.config.PollingTimeout,
	)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("polling stopped")
			return ctx.Err()
		default:
			updates, err := p.getUpdates(ctx)
			if err != nil {
				p.log.Error("failed to get updates", "error", err)
				// Ждём перед повтором
				time.Sleep(5 * time.Second)
				continue
			}

			for i := range updates {
				update := &updates[i]

				if update.UpdateID >= p.lastUpdateID {
					p.lastUpdateID = update.UpdateID + 1
				}

				if err := p.handler(ctx, update); err != nil {
					p.log.Error("failed to handle update",
						"error", err,
						"update_id", update.UpdateID,
					)
				}
			}
		}
	}
}

// DeleteWebhook удаляет webhook перед запуском polling
func (p *Poller) DeleteWebhook(ctx context.Context) error {
	return p.client.DeleteWebhook(ctx)
}

// getUpdates запрашивает новые обновления через long polling
func (p *Poller) getUpdates(ctx context.Context) ([]domain.Update, error) {
	url := fmt.Sprintf("%s/getUpdates?offset=%d&timeout=%d",
		p.client.baseURL, p.lastUpdateID, p.config.PollingTimeout)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp GetUpdatesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	return apiResp.Result, nil
}
