package lookup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

const defaultTimeout = 30 * time.Second

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - HTTP клиент для upstream-сервисов поиска.
// Любой не-2xx статус или транспортная ошибка считаются отказом сервиса.
type Client struct {
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для upstream-сервисов
func NewClient(cfg *Config, log *slog.Logger) *Client {
	timeout := defaultTimeout
	if cfg != nil && cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Log: log,
	}
}

// Fetch выполняет GET к сервису с подстановкой запроса в шаблон URL
// и возвращает сырое тело ответа
func (c *Client) Fetch(ctx context.Context, lt domain.LookupType, query string) ([]byte, error) {
	url := lt.BuildURL(query)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Debug("lookup API request failed",
			"error", err,
			"service", lt.Key,
		)
		return nil, fmt.Errorf("lookup API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Debug("lookup API returned non-2xx status",
			"status_code", resp.StatusCode,
			"service", lt.Key,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("lookup API error [status=%d]", resp.StatusCode)
	}

	return body, nil
}
