// settings — HTTP-клиент сервиса пользовательских настроек:
// интервал уведомлений для планировщика слотов.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/config"
	"github.com/pribylovaa/recommendation-service/internal/service"
)

// Client реализует service.UserPreferences поверх REST API сервиса настроек.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ service.UserPreferences = (*Client)(nil)

// New создаёт клиент с таймаутом из конфигурации.
func New(cfg config.SettingsConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// settingsResponse — тело ответа GET /users/{id}/notification-settings.
type settingsResponse struct {
	NotifyIntervalSeconds int64 `json:"notify_interval_seconds"`
}

// NotifyInterval возвращает интервал уведомлений пользователя.
// Отсутствие сохранённых настроек — service.ErrPreferencesNotFound:
// вызывающая сторона применяет дефолт, а не падает.
func (c *Client) NotifyInterval(ctx context.Context, userID uuid.UUID) (time.Duration, error) {
	const op = "clients/settings/NotifyInterval"

	rawURL := fmt.Sprintf("%s/users/%s/notification-settings", c.baseURL, userID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, fmt.Errorf("%s: %w", op, service.ErrPreferencesNotFound)
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var body settingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if body.NotifyIntervalSeconds <= 0 {
		return 0, fmt.Errorf("%s: %w", op, service.ErrPreferencesNotFound)
	}

	return time.Duration(body.NotifyIntervalSeconds) * time.Second, nil
}
